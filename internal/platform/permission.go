package platform

type permissionGate struct {
	src PermissionService
}

func (g *permissionGate) HasPermission() bool {
	return g.src.Preflight()
}

func (g *permissionGate) RequestPermission() bool {
	return g.src.Request()
}
