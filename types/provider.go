package types

// Catalog and network records of the shared compute-provider contract.
// The VirtualBox backend never produces them.

type Key struct {
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint,omitempty"`
	PublicKey   string `json:"public_key,omitempty"`
}

type Image struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Flavor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CPU    int    `json:"cpu"`
	Memory int64  `json:"memory"` // bytes
	Disk   int64  `json:"disk"`   // bytes
}

type SecGroup struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Rules       []*SecGroupRule `json:"rules,omitempty"`
}

type SecGroupRule struct {
	Group    string `json:"group"`
	Port     string `json:"port"`
	Protocol string `json:"protocol"`
	IPRange  string `json:"ip_range"`
}
