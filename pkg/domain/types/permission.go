package types

// Permission is a named capability granted to an operator,
// e.g. "can_kick" or "can_temp_ban".
type Permission string

// String returns the string representation of the permission
func (p Permission) String() string {
	return string(p)
}

// PermissionSet is a hash set of permissions. The zero value is usable
// for lookups but Add requires a set created by NewPermissionSet.
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from the given permissions
func NewPermissionSet(perms ...Permission) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the permission
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// HasAll reports whether every permission in required is present.
// An empty requirement is always satisfied.
func (s PermissionSet) HasAll(required []Permission) bool {
	for _, p := range required {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

// Add inserts a permission into the set
func (s PermissionSet) Add(p Permission) {
	s[p] = struct{}{}
}

// List returns the permissions as a slice (unordered)
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}
