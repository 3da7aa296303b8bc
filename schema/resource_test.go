package schema

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResourceTypeIsTexture(t *testing.T) {
	tests := []struct {
		typ  ResourceType
		want bool
	}{
		{ResourceTypeTexture, true},
		{ResourceTypeModel, false},
		{ResourceType("audio"), false},
		{ResourceType(""), false},
	}
	for _, tt := range tests {
		if got := tt.typ.IsTexture(); got != tt.want {
			t.Errorf("%q.IsTexture() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestResourceGroupValidate(t *testing.T) {
	tests := []struct {
		name  string
		group ResourceGroup
		want  error
	}{
		{
			name: "valid",
			group: ResourceGroup{Name: "g1", Items: []ResourceItem{
				{Name: "tex1", Path: "/t.png", Type: ResourceTypeTexture},
				{Name: "tex1", Path: "/t.glb", Type: ResourceTypeModel},
			}},
		},
		{
			name:  "empty group",
			group: ResourceGroup{Name: "empty"},
		},
		{
			name:  "missing group name",
			group: ResourceGroup{},
			want:  ErrEmptyName,
		},
		{
			name: "missing item name",
			group: ResourceGroup{Name: "g", Items: []ResourceItem{
				{Path: "/a.png", Type: ResourceTypeTexture},
			}},
			want: ErrEmptyName,
		},
		{
			name: "missing path",
			group: ResourceGroup{Name: "g", Items: []ResourceItem{
				{Name: "a", Type: ResourceTypeModel},
			}},
			want: ErrEmptyPath,
		},
		{
			name: "duplicate texture",
			group: ResourceGroup{Name: "g", Items: []ResourceItem{
				{Name: "a", Path: "/a.png", Type: ResourceTypeTexture},
				{Name: "a", Path: "/b.png", Type: ResourceTypeTexture},
			}},
			want: ErrDuplicateName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.group.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResourceGroupJSON(t *testing.T) {
	const doc = `{"name":"g1","items":[{"name":"tex1","path":"/t.png","type":"texture"}]}`

	var group ResourceGroup
	if err := json.Unmarshal([]byte(doc), &group); err != nil {
		t.Fatal(err)
	}
	if group.Name != "g1" || len(group.Items) != 1 {
		t.Fatalf("unexpected group %+v", group)
	}
	item := group.Items[0]
	if item.Name != "tex1" || item.Path != "/t.png" || !item.Type.IsTexture() {
		t.Fatalf("unexpected item %+v", item)
	}
}
