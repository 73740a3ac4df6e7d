package api

import (
	"github.com/filecoin-project/go-jsonrpc/auth"
)

const (
	// PermRead covers chain reads and status queries.
	PermRead auth.Permission = "read"
	// PermWrite covers config edits and wallet listing.
	PermWrite auth.Permission = "write"
	// PermSign covers everything that broadcasts a transaction.
	PermSign auth.Permission = "sign"
	// PermAdmin covers token minting and raw key handling.
	PermAdmin auth.Permission = "admin"
)

var AllPermissions = []auth.Permission{PermRead, PermWrite, PermSign, PermAdmin}
var DefaultPerms = []auth.Permission{PermRead}

// PermissionedFullAPI wraps a with per-method permission checks driven by
// the perm struct tags.
func PermissionedFullAPI(a FullNode) FullNode {
	var out FullNodeStruct
	auth.PermissionedProxy(AllPermissions, DefaultPerms, a, &out.Internal)
	auth.PermissionedProxy(AllPermissions, DefaultPerms, a, &out.CommonStruct.Internal)
	return &out
}
