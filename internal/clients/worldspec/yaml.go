package worldspec

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// ParseYAML reads a specification from YAML. Unknown keys are rejected and
// room and item names are title cased as in the text format.
func ParseYAML(r io.Reader) (*entities.WorldSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec entities.WorldSpec
	if err := dec.Decode(&spec); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("specification is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed yaml specification")
	}

	for i := range spec.Rooms {
		spec.Rooms[i].Name = titleCase(spec.Rooms[i].Name)
	}
	for i := range spec.Items {
		spec.Items[i].Name = titleCase(spec.Items[i].Name)
	}

	return &spec, nil
}
