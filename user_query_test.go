package devcycle

import (
	"reflect"
	"testing"
	"time"
)

func TestQueryItems(t *testing.T) {
	setNowForTest(t, time.Unix(1000, 0))
	user, err := NewUserBuilderWithOptions(testUserOptions()).UserID("u1").AppBuild(7).Build()
	if err != nil {
		t.Fatalf("Expected build to succeed, got %v", err)
	}

	expected := []QueryItem{
		{Name: "user_id", Value: "u1"},
		{Name: "isAnonymous", Value: "false"},
		{Name: "appBuild", Value: "7"},
		{Name: "lastSeenDate", Value: "1000"},
		{Name: "createdDate", Value: "1000"},
		{Name: "platform", Value: "iOS"},
		{Name: "platformVersion", Value: "17.2"},
		{Name: "deviceModel", Value: "iPhone"},
		{Name: "sdkType", Value: "client"},
		{Name: "sdkVersion", Value: SDKVersion},
	}
	items := user.QueryItems()
	if !reflect.DeepEqual(items, expected) {
		t.Errorf("Expected %+v, got %+v", expected, items)
	}
	if !reflect.DeepEqual(user.QueryItems(), items) {
		t.Errorf("Expected serializing twice to give the same result")
	}
}

func TestQueryItemsFullOrder(t *testing.T) {
	setNowForTest(t, time.Unix(1000, 0))
	user, _ := NewUserBuilderWithOptions(testUserOptions()).
		CustomData(map[string]interface{}{"k": "v"}).
		Country("CA").
		AppVersion("1.0").
		Language("en").
		Name("Ann").
		Email("a@b.com").
		PrivateCustomData(map[string]interface{}{"p": true}).
		AppBuild(2).
		IsAnonymous(true).
		Build()
	setNowForTest(t, time.Unix(2000, 0))
	user.Update(user)

	names := make([]string, 0)
	for _, item := range user.QueryItems() {
		names = append(names, item.Name)
	}
	expected := []string{
		"user_id", "isAnonymous", "email", "name", "language", "country", "appVersion", "appBuild",
		"customData", "privateCustomData", "lastSeenDate", "createdDate", "platform", "platformVersion",
		"deviceModel", "sdkType", "sdkVersion",
	}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Expected order %v, got %v", expected, names)
	}

	values := map[string]string{}
	for _, item := range user.QueryItems() {
		values[item.Name] = item.Value
	}
	if values["customData"] != `{"k":"v"}` || values["privateCustomData"] != `{"p":true}` {
		t.Errorf("Expected custom data as json text, got %s and %s", values["customData"], values["privateCustomData"])
	}
	if values["isAnonymous"] != "true" || values["lastSeenDate"] != "2000" || values["createdDate"] != "1000" {
		t.Errorf("Unexpected values %+v", values)
	}
}

func TestQueryItemsTruncateDates(t *testing.T) {
	setNowForTest(t, time.Unix(1000, int64(999*time.Millisecond)))
	user, _ := NewUserBuilder().UserID("u1").Build()
	for _, item := range user.QueryItems() {
		if (item.Name == "lastSeenDate" || item.Name == "createdDate") && item.Value != "1000" {
			t.Errorf("Expected %s to be truncated to 1000, got %s", item.Name, item.Value)
		}
	}
}

func TestEncodeQueryItems(t *testing.T) {
	items := []QueryItem{
		{Name: "user_id", Value: "u 1"},
		{Name: "email", Value: "a+b@x.com"},
		{Name: "customData", Value: `{"a":1}`},
	}
	expected := "user_id=u+1&email=a%2Bb%40x.com&customData=%7B%22a%22%3A1%7D"
	if got := EncodeQueryItems(items); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
	if got := EncodeQueryItems(nil); got != "" {
		t.Errorf("Expected empty query, got %s", got)
	}

	setNowForTest(t, time.Unix(1000, 0))
	user, _ := NewUserBuilderWithOptions(testUserOptions()).UserID("u1").Build()
	if user.QueryString() != "user_id=u1&isAnonymous=false&lastSeenDate=1000&createdDate=1000&platform=iOS&platformVersion=17.2&deviceModel=iPhone&sdkType=client&sdkVersion="+SDKVersion {
		t.Errorf("Unexpected query string %s", user.QueryString())
	}
}
