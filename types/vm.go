package types

// WaitStatus is the terminal result of a wait-for-state poll loop.
type WaitStatus string

const (
	WaitReached WaitStatus = "reached" // target state observed
	WaitTimeout WaitStatus = "timeout" // deadline elapsed first
)

// VMSummary is one entry of the registered-VM listing.
type VMSummary struct {
	Name string `json:"name" yaml:"name"`
	UUID string `json:"UUID" yaml:"UUID"`
}

// VMInfo holds the key/value pairs emitted by the machine-readable detail
// output. Keys are whatever the management tool prints; there is no schema.
type VMInfo map[string]string

// WaitOutcome is the result of waiting for a VM to reach a state.
type WaitOutcome struct {
	VM     string     `json:"vm" yaml:"vm"`
	State  string     `json:"state" yaml:"state"`
	Status WaitStatus `json:"status" yaml:"status"`
}

// Reached reports whether the target state was observed.
func (o *WaitOutcome) Reached() bool { return o != nil && o.Status == WaitReached }

// VMConfig describes a VM creation request.
type VMConfig struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Flavor string `json:"flavor"`
	// TimeoutSeconds bounds provisioning. Default: 360.
	TimeoutSeconds int `json:"timeout_seconds"`
}
