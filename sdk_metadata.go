package devcycle

const (
	SDKType    = "client"
	SDKVersion = "1.4.0"
)

type sdkMetadata struct {
	SDKType    string `json:"sdkType"`
	SDKVersion string `json:"sdkVersion"`
}

func getSDKMetadata() sdkMetadata {
	return sdkMetadata{
		SDKType:    SDKType,
		SDKVersion: SDKVersion,
	}
}
