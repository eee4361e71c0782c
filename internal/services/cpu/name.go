package cpu

import (
	"strings"

	"github.com/KirkDiggler/manor-hunt/internal/errors"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/random"
)

// NamePrefix starts every generated CPU player name
const NamePrefix = "CPU_"

const nameLetters = 5

// GenerateName draws a name of the form CPU_ followed by five lowercase letters
func GenerateName(src random.Source) (string, error) {
	var b strings.Builder
	b.WriteString(NamePrefix)

	for i := 0; i < nameLetters; i++ {
		n, err := src.NextInt(0, 25)
		if err != nil {
			return "", errors.Wrap(err, "failed to draw name letter")
		}
		b.WriteByte(byte('a' + n))
	}

	return b.String(), nil
}
