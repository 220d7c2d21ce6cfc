package identity

// Capability names an operation gated by role.
type Capability int

const (
	UnknownCapability Capability = iota
	CreatePackages
	CollectPackages
	ReturnPackages
	DeletePackages
	ManageUsers
	ManageStores
	ViewAllStores
)

// String names the operation in error messages.
func (c Capability) String() string {
	switch c {
	case CreatePackages:
		return "create package"
	case CollectPackages:
		return "collect package"
	case ReturnPackages:
		return "return package"
	case DeletePackages:
		return "delete package"
	case ManageUsers:
		return "manage users"
	case ManageStores:
		return "manage stores"
	case ViewAllStores:
		return "view all stores"
	case UnknownCapability:
	}
	return "unknown"
}

// capabilityTable is the single source of truth for role permissions.
//
//	| Capability      | super_admin | admin | portaria | loja |
//	|-----------------|-------------|-------|----------|------|
//	| CreatePackages  |      x      |   x   |    x     |      |
//	| CollectPackages |      x      |   x   |    x     |      |
//	| ReturnPackages  |      x      |   x   |    x     |      |
//	| DeletePackages  |      x      |   x   |          |      |
//	| ManageUsers     |      x      |       |          |      |
//	| ManageStores    |      x      |   x   |          |      |
//	| ViewAllStores   |      x      |   x   |    x     |      |
func capabilityTable() map[Role][]Capability {
	return map[Role][]Capability{
		SuperAdmin: {
			CreatePackages, CollectPackages, ReturnPackages, DeletePackages,
			ManageUsers, ManageStores, ViewAllStores,
		},
		Admin: {
			CreatePackages, CollectPackages, ReturnPackages, DeletePackages,
			ManageStores, ViewAllStores,
		},
		Portaria: {
			CreatePackages, CollectPackages, ReturnPackages, ViewAllStores,
		},
		Loja: {},
	}
}
