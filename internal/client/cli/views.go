package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ekalnins/campustrade/internal/client/models"
	"github.com/ekalnins/campustrade/internal/client/nav"
)

// Go navigates to a named view. The guard runs first: protected views
// redirect to the login view when no session can be established, in which
// case the login flow starts right away.
func (a *App) Go(ctx context.Context, view string) error {
	target, ok := nav.Lookup(view)
	if !ok {
		fmt.Fprintln(a.out, "Unknown view:", view)
		return nil
	}

	decision := a.guard.Resolve(ctx, target)
	if decision.Redirected {
		fmt.Fprintln(a.out, "Please log in first")
		return a.Login(ctx)
	}
	return a.render(ctx, decision.Route.Name)
}

func (a *App) render(ctx context.Context, view string) error {
	switch view {
	case nav.RouteHome, nav.RouteItems:
		return a.BrowseItems(ctx)
	case nav.RouteItemDetail:
		return a.showItem(ctx)
	case nav.RouteOrders:
		return a.showOrders(ctx)
	case nav.RouteMessages:
		return a.showConversations(ctx)
	case nav.RouteWishlist:
		return a.showWishlist(ctx)
	case nav.RouteProfile:
		return a.showProfile(ctx)
	case nav.RoutePublish:
		return a.publishItem(ctx)
	case nav.RouteCheckout:
		return a.checkout(ctx)
	case nav.RouteItemEdit:
		return a.markItemSold(ctx)
	case nav.RouteLogin:
		return a.Login(ctx)
	case nav.RouteRegister:
		return a.Register(ctx)
	case nav.RouteAbout:
		fmt.Fprintln(a.out, "campustrade — a campus secondhand marketplace client")
		return nil
	default:
		return nil
	}
}

// publishItem walks through creating a listing.
func (a *App) publishItem(ctx context.Context) error {
	userID, ok := a.session.UserID()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	categories, err := a.client.ListCategories(ctx)
	if err == nil {
		for _, c := range categories {
			fmt.Fprintf(a.out, "%3d  %s\n", c.CategoryID, c.CategoryName)
		}
	}

	params := models.CreateItemParams{UserID: userID}
	if params.CategoryID, err = getInt64(a.reader, "Enter category id", a.out); err != nil {
		return err
	}
	if params.Title, err = getSimpleText(a.reader, "Enter title", a.out); err != nil {
		return err
	}
	if params.Description, err = getSimpleText(a.reader, "Enter description", a.out); err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Enter price", a.out)
	if err != nil {
		return err
	}
	if params.Price, err = strconv.ParseFloat(priceText, 64); err != nil {
		fmt.Fprintln(a.out, "Not a price:", priceText)
		return nil
	}
	condition, err := getSimpleText(a.reader, "Enter condition (brand_new/like_new/very_good/good/acceptable)", a.out)
	if err != nil {
		return err
	}
	params.ConditionLevel = models.ConditionLevel(condition)
	if params.Location, err = getSimpleText(a.reader, "Enter pickup location", a.out); err != nil {
		return err
	}

	itemID, err := a.client.CreateItem(ctx, params)
	if err != nil {
		fmt.Fprintln(a.out, "Publish failed:", err)
		return nil
	}
	fmt.Fprintf(a.out, "Listing published, item id %d\n", itemID)
	return nil
}

// checkout walks through buying an item.
func (a *App) checkout(ctx context.Context) error {
	userID, ok := a.session.UserID()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	itemID, err := getInt64(a.reader, "Enter item id", a.out)
	if err != nil {
		return err
	}

	params := models.CreateOrderParams{BuyerID: userID, ItemID: itemID}
	payment, err := getSimpleText(a.reader, "Payment method (alipay/wechat/cash)", a.out)
	if err != nil {
		return err
	}
	params.PaymentMethod = models.PaymentMethod(payment)
	delivery, err := getSimpleText(a.reader, "Delivery method (pickup/express)", a.out)
	if err != nil {
		return err
	}
	params.DeliveryMethod = models.DeliveryMethod(delivery)

	if params.DeliveryMethod == models.DeliveryExpress {
		if addr, err := a.client.GetDefaultAddress(ctx, userID); err == nil && addr != nil {
			params.AddressID = &addr.AddressID
			fmt.Fprintf(a.out, "Shipping to: %s, %s %s %s\n",
				addr.ReceiverName, addr.City, addr.District, addr.DetailedAddress)
		}
	}

	result, err := a.client.CreateOrder(ctx, params)
	if err != nil {
		fmt.Fprintln(a.out, "Checkout failed:", err)
		return nil
	}
	fmt.Fprintf(a.out, "Order %s created\n", result.OrderNumber)
	return nil
}

// markItemSold closes one of the user's own listings.
func (a *App) markItemSold(ctx context.Context) error {
	userID, ok := a.session.UserID()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	itemID, err := getInt64(a.reader, "Enter item id", a.out)
	if err != nil {
		return err
	}

	sold := models.ItemSold
	if err := a.client.UpdateItem(ctx, itemID, userID, models.ItemUpdate{Status: &sold}); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		return nil
	}
	fmt.Fprintln(a.out, "Listing marked as sold")
	return nil
}

// BrowseItems lists the first page of available listings. Browsing is
// public and needs no session.
func (a *App) BrowseItems(ctx context.Context) error {
	page, err := a.client.ListItems(ctx, models.ItemFilter{Page: 1, Limit: 20, Status: models.ItemAvailable})
	if err != nil {
		fmt.Fprintln(a.out, "Could not load items:", err)
		return nil
	}
	if len(page.Items) == 0 {
		fmt.Fprintln(a.out, "No items found")
		return nil
	}
	for _, item := range page.Items {
		fmt.Fprintf(a.out, "#%d  %-40s  %8.2f  %s\n", item.ItemID, item.Title, item.Price, item.ConditionLevel)
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d items total)\n",
		page.Pagination.Page, page.Pagination.Pages, page.Pagination.Total)
	return nil
}

// SearchItems prompts for a keyword and searches listings.
func (a *App) SearchItems(ctx context.Context) error {
	keyword, err := getSimpleText(a.reader, "Enter a keyword", a.out)
	if err != nil {
		return err
	}
	items, err := a.client.SearchItems(ctx, models.ItemSearch{Keyword: keyword})
	if err != nil {
		fmt.Fprintln(a.out, "Search failed:", err)
		return nil
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items matched")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "#%d  %-40s  %8.2f  %s\n", item.ItemID, item.Title, item.Price, item.ConditionLevel)
	}
	return nil
}

func (a *App) showItem(ctx context.Context) error {
	itemID, err := getInt64(a.reader, "Enter item id", a.out)
	if err != nil {
		return err
	}
	item, err := a.client.GetItem(ctx, itemID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load item:", err)
		return nil
	}
	fmt.Fprintf(a.out, "#%d %s\n", item.ItemID, item.Title)
	fmt.Fprintf(a.out, "Price: %.2f  Condition: %s  Status: %s  Views: %d\n",
		item.Price, item.ConditionLevel, item.Status, item.ViewCount)
	if item.Username != "" {
		fmt.Fprintf(a.out, "Seller: %s\n", item.Username)
	}
	if item.Description != "" {
		fmt.Fprintln(a.out, item.Description)
	}
	return nil
}

func (a *App) showOrders(ctx context.Context) error {
	userID, ok := a.session.UserID()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	orders, err := a.client.ListUserOrders(ctx, userID, "", "")
	if err != nil {
		fmt.Fprintln(a.out, "Could not load orders:", err)
		return nil
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintf(a.out, "%s  %-30s  %8.2f  %s/%s\n",
			o.OrderNumber, o.ItemTitle, o.TotalAmount, o.OrderStatus, o.PaymentStatus)
	}
	return nil
}

func (a *App) showConversations(ctx context.Context) error {
	userID, ok := a.session.UserID()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	conversations, err := a.client.ListConversations(ctx, userID)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load conversations:", err)
		return nil
	}
	if len(conversations) == 0 {
		fmt.Fprintln(a.out, "No conversations yet")
		return nil
	}
	for _, c := range conversations {
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprintf(" (%d unread)", c.UnreadCount)
		}
		fmt.Fprintf(a.out, "%s%s: %s\n", c.OtherUsername, unread, c.LastMessage)
	}
	return nil
}

func (a *App) showWishlist(ctx context.Context) error {
	userID, ok := a.session.UserID()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	page, err := a.client.ListWishlist(ctx, userID, 1, 20)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load wishlist:", err)
		return nil
	}
	if len(page.Wishlist) == 0 {
		fmt.Fprintln(a.out, "Wishlist is empty")
		return nil
	}
	for _, entry := range page.Wishlist {
		fmt.Fprintf(a.out, "#%d  %-40s  %8.2f\n", entry.ItemID, entry.Title, entry.Price)
	}
	return nil
}

func (a *App) showProfile(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "Username:   %s\n", user.Username)
	fmt.Fprintf(a.out, "Student id: %s\n", user.StudentID)
	fmt.Fprintf(a.out, "Real name:  %s\n", user.RealName)
	fmt.Fprintf(a.out, "Phone:      %s\n", user.Phone)
	fmt.Fprintf(a.out, "Email:      %s\n", user.Email)
	fmt.Fprintf(a.out, "Credit:     %d\n", user.CreditScore)
	return nil
}
