package models

// DeviceProfile is the static traffic budget of one device for a reporting window.
// It is a value type; copies never alias, so a profile is immutable once created.
type DeviceProfile struct {
	Name          string `json:"name"`
	TotalPackets  int64  `json:"totalPackets"`
	TotalRequests int64  `json:"totalRequests"`
}

func NewDeviceProfile(name string, totalPackets, totalRequests int64) DeviceProfile {
	return DeviceProfile{
		Name:          name,
		TotalPackets:  totalPackets,
		TotalRequests: totalRequests,
	}
}
