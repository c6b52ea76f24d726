// Package nav gates navigation between the client's views. A Guard runs
// before every navigation, lazily re-hydrating the session from durable
// storage and redirecting unauthenticated access away from protected
// destinations.
package nav

// Route is one navigable destination.
type Route struct {
	Name         string
	RequiresAuth bool
}

// View names, mirroring the marketplace's screen map.
const (
	RouteHome       = "home"
	RouteLogin      = "login"
	RouteRegister   = "register"
	RouteItems      = "items"
	RouteItemDetail = "item-detail"
	RouteItemEdit   = "item-edit"
	RoutePublish    = "publish"
	RouteCheckout   = "checkout"
	RouteOrders     = "orders"
	RouteMessages   = "messages"
	RouteWishlist   = "wishlist"
	RouteProfile    = "profile"
	RouteAbout      = "about"
)

// routes is the navigation table. Browsing is public; everything that
// acts on behalf of the user requires a session.
var routes = []Route{
	{Name: RouteHome},
	{Name: RouteLogin},
	{Name: RouteRegister},
	{Name: RouteItems},
	{Name: RouteItemDetail},
	{Name: RouteItemEdit, RequiresAuth: true},
	{Name: RoutePublish, RequiresAuth: true},
	{Name: RouteCheckout, RequiresAuth: true},
	{Name: RouteOrders, RequiresAuth: true},
	{Name: RouteMessages, RequiresAuth: true},
	{Name: RouteWishlist, RequiresAuth: true},
	{Name: RouteProfile, RequiresAuth: true},
	{Name: RouteAbout},
}

// Routes returns the full navigation table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup finds a route by name.
func Lookup(name string) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
