package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
)

var ErrNoRoute = errors.New("no route matches path")

// maxRedirects bounds redirect chains in a misconfigured route table.
const maxRedirects = 8

// Location is where a navigation ended up.
type Location struct {
	Path     string
	FullPath string
	Name     string
	Query    url.Values
	// NextURL is the full path the guard blocked, if any.
	NextURL string
	// RedirectedFrom is the full path originally requested when a
	// redirect route or the guard sent the navigation elsewhere.
	RedirectedFrom string
}

// AfterHook runs after every completed navigation.
type AfterHook func(ctx context.Context, to, from Location)

// Router resolves paths against its route table, applies the guard and
// keeps a navigation history.
type Router struct {
	routes []Route
	guard  *Guard

	mu      sync.Mutex
	history []Location
	hooks   []AfterHook
}

// New creates a router over routes. With no routes, DefaultRoutes is used.
func New(guard *Guard, routes ...Route) *Router {
	if len(routes) == 0 {
		routes = DefaultRoutes()
	}
	return &Router{routes: routes, guard: guard}
}

// AfterEach registers a hook called after each completed navigation.
func (r *Router) AfterEach(fn AfterHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, fn)
}

// Push navigates to path. It satisfies the session's Navigator.
func (r *Router) Push(ctx context.Context, path string) error {
	_, err := r.Navigate(ctx, path)
	return err
}

// Navigate resolves path, follows redirects, runs the guard and records the
// resulting Location in history.
func (r *Router) Navigate(ctx context.Context, path string) (Location, error) {
	return r.navigate(ctx, path, 0)
}

// Current returns the last location, or the zero Location before the first
// navigation.
func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return Location{}
	}
	return r.history[len(r.history)-1]
}

// Back navigates to the previous history entry, re-running the guard. With
// no previous entry it returns the current location unchanged.
func (r *Router) Back(ctx context.Context) (Location, error) {
	r.mu.Lock()
	if len(r.history) < 2 {
		r.mu.Unlock()
		return r.Current(), nil
	}
	prev := r.history[len(r.history)-2]
	r.mu.Unlock()

	// drop both the current entry and the one being returned to; the
	// navigation appends the freshly guarded location
	return r.navigate(ctx, prev.FullPath, 2)
}

// resolve parses path and returns it with the route matching its path part.
func (r *Router) resolve(path string) (Route, *url.URL, error) {
	u, err := url.Parse(path)
	if err != nil {
		return Route{}, nil, fmt.Errorf("parse path %q: %w", path, err)
	}
	rt, err := r.match(u.Path)
	if err != nil {
		return Route{}, nil, err
	}
	return rt, u, nil
}

func (r *Router) match(p string) (Route, error) {
	if p == "" {
		p = PathHome
	}
	var fallback *Route
	for i := range r.routes {
		rt := &r.routes[i]
		if rt.Path == Wildcard {
			if fallback == nil {
				fallback = rt
			}
			continue
		}
		if rt.Path == p {
			return *rt, nil
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return Route{}, fmt.Errorf("%w: %s", ErrNoRoute, p)
}

func (r *Router) navigate(ctx context.Context, fullPath string, drop int) (Location, error) {
	requested := fullPath
	var nextURL string

	route, u, err := r.resolve(fullPath)
	if err != nil {
		return Location{}, err
	}

	for i := 0; ; i++ {
		if i == maxRedirects {
			return Location{}, fmt.Errorf("too many redirects from %s", requested)
		}
		if route.Redirect != "" {
			fullPath = route.Redirect
		} else {
			target, err := r.check(ctx, route)
			if err != nil {
				return Location{}, err
			}
			if target == "" {
				break
			}
			nextURL = fullPath
			fullPath = target
		}
		if route, u, err = r.resolve(fullPath); err != nil {
			return Location{}, err
		}
	}

	to := Location{
		Path:     u.Path,
		FullPath: fullPath,
		Name:     route.Name,
		Query:    u.Query(),
		NextURL:  nextURL,
	}
	if to.Path == "" {
		to.Path = PathHome
	}
	if fullPath != requested {
		to.RedirectedFrom = requested
	}

	r.mu.Lock()
	var from Location
	if n := len(r.history); n > 0 {
		from = r.history[n-1]
		r.history = r.history[:n-min(drop, n)]
	}
	r.history = append(r.history, to)
	hooks := append([]AfterHook(nil), r.hooks...)
	r.mu.Unlock()

	for _, h := range hooks {
		h(ctx, to, from)
	}
	return to, nil
}

func (r *Router) check(ctx context.Context, route Route) (string, error) {
	if r.guard == nil {
		return "", nil
	}
	return r.guard.Check(ctx, route)
}
