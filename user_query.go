package devcycle

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type QueryItem struct {
	Name  string
	Value string
}

type queryItemBuilder struct {
	items []QueryItem
}

func (q *queryItemBuilder) add(name string, value string) *queryItemBuilder {
	q.items = append(q.items, QueryItem{Name: name, Value: value})
	return q
}

func (q *queryItemBuilder) addString(name string, value *string) *queryItemBuilder {
	if value == nil {
		return q
	}
	return q.add(name, *value)
}

func (q *queryItemBuilder) addBool(name string, value *bool) *queryItemBuilder {
	if value == nil {
		return q
	}
	return q.add(name, strconv.FormatBool(*value))
}

func (q *queryItemBuilder) addInt(name string, value *int) *queryItemBuilder {
	if value == nil {
		return q
	}
	return q.add(name, strconv.Itoa(*value))
}

func (q *queryItemBuilder) addData(name string, value []byte) *queryItemBuilder {
	if value == nil {
		return q
	}
	return q.add(name, string(value))
}

func (q *queryItemBuilder) addDate(name string, value time.Time) *queryItemBuilder {
	return q.add(name, strconv.FormatInt(value.Unix(), 10))
}

func (q *queryItemBuilder) build() []QueryItem {
	result := q.items
	q.items = nil
	return result
}

// Returns the user's attributes as query parameters. The order is fixed and unset
// attributes are skipped; request signing and cache keys depend on both.
func (u *User) QueryItems() []QueryItem {
	return (&queryItemBuilder{items: make([]QueryItem, 0, 17)}).
		addString("user_id", u.UserID).
		addBool("isAnonymous", u.IsAnonymous).
		addString("email", u.Email).
		addString("name", u.Name).
		addString("language", u.Language).
		addString("country", u.Country).
		addString("appVersion", u.AppVersion).
		addInt("appBuild", u.AppBuild).
		addData("customData", u.CustomData).
		addData("privateCustomData", u.PrivateCustomData).
		addDate("lastSeenDate", u.LastSeenDate).
		addDate("createdDate", u.createdDate).
		add("platform", u.platform).
		add("platformVersion", u.platformVersion).
		add("deviceModel", u.deviceModel).
		add("sdkType", u.sdkType).
		add("sdkVersion", u.sdkVersion).
		build()
}

func (u *User) QueryString() string {
	return EncodeQueryItems(u.QueryItems())
}

// Encodes items as a URL query string in the given order
func EncodeQueryItems(items []QueryItem) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(item.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(item.Value))
	}
	return sb.String()
}
