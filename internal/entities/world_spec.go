package entities

import (
	"regexp"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

var roomNamePattern = regexp.MustCompile(`^[A-Za-z0-9' ]+$`)

// WorldSpec is the validated description a world is built from
type WorldSpec struct {
	Rows         int        `yaml:"rows"`
	Cols         int        `yaml:"cols"`
	Name         string     `yaml:"name"`
	TargetName   string     `yaml:"target_name"`
	TargetHealth int        `yaml:"target_health"`
	PetName      string     `yaml:"pet_name"`
	RoomCount    int        `yaml:"room_count,omitempty"` // declared total, zero when not declared
	ItemCount    int        `yaml:"item_count,omitempty"` // declared total, zero when not declared
	Rooms        []RoomSpec `yaml:"rooms"`
	Items        []ItemSpec `yaml:"items"`
}

// RoomSpec describes one room; its id is its index in WorldSpec.Rooms
type RoomSpec struct {
	Name   string `yaml:"name"`
	Bounds Rect   `yaml:"bounds"`
}

// ItemSpec describes one item; its id is its index in WorldSpec.Items
type ItemSpec struct {
	RoomID int    `yaml:"room"`
	Damage int    `yaml:"damage"`
	Name   string `yaml:"name"`
}

// Validate checks the specification before any world is built from it
func (s *WorldSpec) Validate() error {
	if s == nil {
		return errors.InvalidArgument("world specification is required")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", s.Name, vb)
	errors.ValidateRequired("target_name", s.TargetName, vb)
	errors.ValidateRequired("pet_name", s.PetName, vb)
	errors.ValidateMin("rows", s.Rows, 1, vb)
	errors.ValidateMin("cols", s.Cols, 1, vb)
	errors.ValidateMin("target_health", s.TargetHealth, 1, vb)

	if len(s.Rooms) == 0 {
		vb.Field("rooms", "must contain at least one room")
	}
	if s.RoomCount != 0 && s.RoomCount != len(s.Rooms) {
		vb.Fieldf("rooms", "declared %d rooms but found %d", s.RoomCount, len(s.Rooms))
	}
	if len(s.Items) == 0 {
		vb.Field("items", "must contain at least one item")
	}
	if s.ItemCount != 0 && s.ItemCount != len(s.Items) {
		vb.Fieldf("items", "declared %d items but found %d", s.ItemCount, len(s.Items))
	}

	names := mapset.New[string]()
	bounds := mapset.New[Rect]()
	for i, room := range s.Rooms {
		switch {
		case room.Name == "":
			vb.Fieldf("rooms", "room %d has no name", i)
		case !roomNamePattern.MatchString(room.Name):
			vb.Fieldf("rooms", "room %d name %q must contain letters, digits, apostrophes and spaces only", i, room.Name)
		case names.Has(room.Name):
			vb.Fieldf("rooms", "duplicate room name %q", room.Name)
		}
		names.Put(room.Name)

		if !room.Bounds.Valid() {
			vb.Fieldf("rooms", "room %q has invalid bounds %s", room.Name, room.Bounds)
		} else if !s.inside(room.Bounds) {
			vb.Fieldf("rooms", "room %q bounds %s fall outside the %dx%d map", room.Name, room.Bounds, s.Rows, s.Cols)
		}
		if bounds.Has(room.Bounds) {
			vb.Fieldf("rooms", "room %q duplicates bounds %s", room.Name, room.Bounds)
		}
		bounds.Put(room.Bounds)
	}

	for i, item := range s.Items {
		if item.Name == "" {
			vb.Fieldf("items", "item %d has no name", i)
		}
		if item.Damage < 1 {
			vb.Fieldf("items", "item %d damage must be positive", i)
		}
		if item.RoomID < 0 || item.RoomID >= len(s.Rooms) {
			vb.Fieldf("items", "item %d room %d does not exist", i, item.RoomID)
		}
	}

	return vb.Build()
}

func (s *WorldSpec) inside(r Rect) bool {
	return r.Top >= 0 && r.Left >= 0 && r.Bottom < s.Rows && r.Right < s.Cols
}

// Clone returns a deep copy
func (s *WorldSpec) Clone() *WorldSpec {
	out := *s
	out.Rooms = append([]RoomSpec(nil), s.Rooms...)
	out.Items = append([]ItemSpec(nil), s.Items...)
	return &out
}
