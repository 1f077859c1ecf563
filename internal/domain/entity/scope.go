package entity

import "slices"

// Scope is a string permission token granted by a signed token, e.g.
// "recipe:create". Authorization checks are set-membership tests.
type Scope = string

// Scopes granted to the built-in system user, which calls the JSON API on the
// server's own behalf (code lifecycle, login email, user provisioning).
func SystemScopes() []Scope {
	return []Scope{
		"code:create",
		"code:read",
		"code:update",
		"code:verify",
		"code:delete",
		"email:code:create",
		"user:create",
		"user:read",
	}
}

// Scopes granted to an ordinary user token at login.
func UserScopes() []Scope {
	return []Scope{
		"category:create",
		"category:read",
		"category:update",
		"category:delete",
		"image:create",
		"image:read",
		"image:update",
		"image:delete",
		"ingredient:create",
		"ingredient:read",
		"ingredient:update",
		"ingredient:delete",
		"recipe:create",
		"recipe:read",
		"recipe:update",
		"recipe:delete",
		"step:create",
		"step:read",
		"step:update",
		"step:delete",
	}
}

// AIScopes are opt-in scopes for the recipe-generation endpoints, appended to
// a user token when the deployment enables them.
func AIScopes() []Scope {
	return []Scope{
		"ai:create-recipe",
		"ai:modify-recipe",
		"ai:grocery-list",
	}
}

// HasScope reports whether the granted set contains the required scope.
func HasScope(granted []Scope, required Scope) bool {
	return slices.Contains(granted, required)
}
