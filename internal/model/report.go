package model

// SupportReport is the printed result of a version check.
type SupportReport struct {
	Supported bool `yaml:"supported" json:"supported"`
}

// PermissionReport is the printed result of a permission preflight or request.
type PermissionReport struct {
	Granted   bool `yaml:"granted"             json:"granted"`
	Requested bool `yaml:"requested,omitempty" json:"requested,omitempty"`
}

// ScaleReport pairs a display with its integer backing scale.
type ScaleReport struct {
	DisplayID   uint32 `yaml:"display_id"   json:"display_id"`
	ScaleFactor uint64 `yaml:"scale_factor" json:"scale_factor"`
}
