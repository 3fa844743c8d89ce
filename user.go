package devcycle

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User attributes used to evaluate Features and Variables
//
// NOTE: a User is only valid with both UserID and IsAnonymous set. Use UserBuilder to create one.
// PrivateCustomData is used for targeting only and is not forwarded to analytics.
type User struct {
	UserID            *string
	IsAnonymous       *bool
	Email             *string
	Name              *string
	Language          *string
	Country           *string
	AppVersion        *string
	AppBuild          *int
	CustomData        json.RawMessage
	PrivateCustomData json.RawMessage
	LastSeenDate      time.Time

	createdDate     time.Time
	platform        string
	platformVersion string
	deviceModel     string
	sdkType         string
	sdkVersion      string
}

func newUser(environment EnvironmentProvider) *User {
	t := now()
	info := environment.DeviceInfo()
	metadata := getSDKMetadata()
	return &User{
		LastSeenDate:    t,
		createdDate:     t,
		platform:        info.Platform,
		platformVersion: info.PlatformVersion,
		deviceModel:     info.DeviceModel,
		sdkType:         metadata.SDKType,
		sdkVersion:      metadata.SDKVersion,
	}
}

func (u *User) CreatedDate() time.Time { return u.createdDate }
func (u *User) Platform() string { return u.platform }
func (u *User) PlatformVersion() string { return u.platformVersion }
func (u *User) DeviceModel() string { return u.deviceModel }
func (u *User) SDKType() string { return u.sdkType }
func (u *User) SDKVersion() string { return u.sdkVersion }
func (u *User) DeviceInfo() DeviceInfo {
	return DeviceInfo{Platform: u.platform, PlatformVersion: u.platformVersion, DeviceModel: u.deviceModel}
}

// Merges the mutable attributes of other into u and refreshes LastSeenDate.
// Every mutable attribute is overwritten, so a nil field in other clears the field in u.
// UserID, IsAnonymous, the created date and the device and SDK fields never change.
func (u *User) Update(other *User) {
	u.LastSeenDate = now()
	if other == nil {
		return
	}
	u.Email = other.Email
	u.Name = other.Name
	u.Language = other.Language
	u.Country = other.Country
	u.AppVersion = other.AppVersion
	u.AppBuild = other.AppBuild
	u.CustomData = other.CustomData
	u.PrivateCustomData = other.PrivateCustomData
}

// Returns a deep copy of u
func (u *User) Clone() *User {
	c := *u
	c.UserID = clonePtr(u.UserID)
	c.IsAnonymous = clonePtr(u.IsAnonymous)
	c.Email = clonePtr(u.Email)
	c.Name = clonePtr(u.Name)
	c.Language = clonePtr(u.Language)
	c.Country = clonePtr(u.Country)
	c.AppVersion = clonePtr(u.AppVersion)
	c.AppBuild = clonePtr(u.AppBuild)
	c.CustomData = cloneBytes(u.CustomData)
	c.PrivateCustomData = cloneBytes(u.PrivateCustomData)
	return &c
}

type userJSON struct {
	UserID            *string         `json:"user_id,omitempty"`
	IsAnonymous       *bool           `json:"isAnonymous,omitempty"`
	Email             *string         `json:"email,omitempty"`
	Name              *string         `json:"name,omitempty"`
	Language          *string         `json:"language,omitempty"`
	Country           *string         `json:"country,omitempty"`
	AppVersion        *string         `json:"appVersion,omitempty"`
	AppBuild          *int            `json:"appBuild,omitempty"`
	CustomData        json.RawMessage `json:"customData,omitempty"`
	PrivateCustomData json.RawMessage `json:"privateCustomData,omitempty"`
	LastSeenDate      int64           `json:"lastSeenDate"`
	CreatedDate       int64           `json:"createdDate"`
	Platform          string          `json:"platform"`
	PlatformVersion   string          `json:"platformVersion"`
	DeviceModel       string          `json:"deviceModel"`
	SDKType           string          `json:"sdkType"`
	SDKVersion        string          `json:"sdkVersion"`
}

// Dates are encoded as unix milliseconds
func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{
		UserID:            u.UserID,
		IsAnonymous:       u.IsAnonymous,
		Email:             u.Email,
		Name:              u.Name,
		Language:          u.Language,
		Country:           u.Country,
		AppVersion:        u.AppVersion,
		AppBuild:          u.AppBuild,
		CustomData:        u.CustomData,
		PrivateCustomData: u.PrivateCustomData,
		LastSeenDate:      u.LastSeenDate.UnixMilli(),
		CreatedDate:       u.createdDate.UnixMilli(),
		Platform:          u.platform,
		PlatformVersion:   u.platformVersion,
		DeviceModel:       u.deviceModel,
		SDKType:           u.sdkType,
		SDKVersion:        u.sdkVersion,
	})
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw userJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = User{
		UserID:            raw.UserID,
		IsAnonymous:       raw.IsAnonymous,
		Email:             raw.Email,
		Name:              raw.Name,
		Language:          raw.Language,
		Country:           raw.Country,
		AppVersion:        raw.AppVersion,
		AppBuild:          raw.AppBuild,
		CustomData:        raw.CustomData,
		PrivateCustomData: raw.PrivateCustomData,
		LastSeenDate:      time.UnixMilli(raw.LastSeenDate),
		createdDate:       time.UnixMilli(raw.CreatedDate),
		platform:          raw.Platform,
		platformVersion:   raw.PlatformVersion,
		deviceModel:       raw.DeviceModel,
		sdkType:           raw.SDKType,
		sdkVersion:        raw.SDKVersion,
	}
	return nil
}

type UserBuilder struct {
	user    *User
	options *UserOptions
}

func NewUserBuilder() *UserBuilder {
	return NewUserBuilderWithOptions(nil)
}

func NewUserBuilderWithOptions(options *UserOptions) *UserBuilder {
	return &UserBuilder{
		user:    newUser(options.environment()),
		options: options,
	}
}

// Sets the user id. Also marks the user as known (IsAnonymous false) unless
// IsAnonymous was already set on this builder.
func (b *UserBuilder) UserID(userID string) *UserBuilder {
	b.user.UserID = &userID
	if b.user.IsAnonymous == nil {
		isAnonymous := false
		b.user.IsAnonymous = &isAnonymous
	}
	return b
}

// Only the first call per build takes effect. The effective call assigns a freshly generated user id.
func (b *UserBuilder) IsAnonymous(isAnonymous bool) *UserBuilder {
	if b.user.IsAnonymous != nil {
		return b
	}
	b.user.IsAnonymous = &isAnonymous
	userID := uuid.NewString()
	b.user.UserID = &userID
	return b
}

func (b *UserBuilder) Email(email string) *UserBuilder {
	b.user.Email = &email
	return b
}

func (b *UserBuilder) Name(name string) *UserBuilder {
	b.user.Name = &name
	return b
}

func (b *UserBuilder) Language(language string) *UserBuilder {
	b.user.Language = &language
	return b
}

func (b *UserBuilder) Country(country string) *UserBuilder {
	b.user.Country = &country
	return b
}

// Resolves the country of ip with the configured CountryResolver. Leaves Country
// untouched when there is no resolver or the address is unknown.
func (b *UserBuilder) CountryFromIP(ip string) *UserBuilder {
	resolver := b.options.countryResolver()
	if resolver == nil {
		return b
	}
	if country, ok := resolver.LookupIp(ip); ok && country != "" {
		b.user.Country = &country
	}
	return b
}

func (b *UserBuilder) AppVersion(appVersion string) *UserBuilder {
	b.user.AppVersion = &appVersion
	return b
}

func (b *UserBuilder) AppBuild(appBuild int) *UserBuilder {
	b.user.AppBuild = &appBuild
	return b
}

// Serialization failures are logged and leave CustomData unset.
func (b *UserBuilder) CustomData(customData map[string]interface{}) *UserBuilder {
	if data, ok := encodeCustomData("customData", customData); ok {
		b.user.CustomData = data
	}
	return b
}

// Serialization failures are logged and leave PrivateCustomData unset.
func (b *UserBuilder) PrivateCustomData(privateCustomData map[string]interface{}) *UserBuilder {
	if data, ok := encodeCustomData("privateCustomData", privateCustomData); ok {
		b.user.PrivateCustomData = data
	}
	return b
}

// Returns the accumulated user and starts a fresh one. On error the builder keeps
// its state so the missing fields can be added before retrying.
func (b *UserBuilder) Build() (*User, error) {
	if b.user.UserID == nil || b.user.IsAnonymous == nil {
		return nil, &UserError{Kind: MissingUserIdAndIsAnonymousFalse}
	}
	result := b.user
	b.user = newUser(b.options.environment())
	return result, nil
}

func encodeCustomData(field string, data map[string]interface{}) (json.RawMessage, bool) {
	if data == nil {
		return nil, true
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		Logger().LogDebug("Skipping custom data: ", &CustomDataError{Err: err, Field: field})
		Logger().Increment("custom_data_serialization_failed", 1, map[string]interface{}{"field": field})
		return nil, false
	}
	Logger().Distribution("custom_data_size", float64(len(bytes)), map[string]interface{}{"field": field})
	return json.RawMessage(bytes), true
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBytes(b json.RawMessage) json.RawMessage {
	if b == nil {
		return nil
	}
	c := make(json.RawMessage, len(b))
	copy(c, b)
	return c
}
