package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/guttosm/pallet-service/internal/domain/model"
)

const (
	referencePrefix     = "PAL"
	referenceDateLayout = "20060102"
	clientCodeLength    = 3
	clientCodePad       = 'X'
)

var referencePattern = regexp.MustCompile(`^PAL-(\d{8})-(.{3})-(\d{3,})$`)

// ClientCode returns the 3-character client code used in pallet references:
// the client name uppercased with whitespace removed, truncated or padded with X.
func ClientCode(clientName string) string {
	code := make([]rune, 0, clientCodeLength)
	for _, r := range strings.ToUpper(clientName) {
		if unicode.IsSpace(r) {
			continue
		}
		code = append(code, r)
		if len(code) == clientCodeLength {
			break
		}
	}
	for len(code) < clientCodeLength {
		code = append(code, clientCodePad)
	}
	return string(code)
}

// GenerateReference builds PAL-{YYYYMMDD}-{client code}-{ordinal:03}.
// Two clients sharing a code on the same day produce identical references.
func GenerateReference(date time.Time, clientName string, ordinal int) string {
	return fmt.Sprintf("%s-%s-%s-%03d", referencePrefix, date.Format(referenceDateLayout), ClientCode(clientName), ordinal)
}

// ParsedReference holds the components of a pallet reference.
type ParsedReference struct {
	Date       time.Time
	ClientCode string
	Ordinal    int
}

// ParseReference splits a reference produced by GenerateReference.
func ParseReference(reference string) (ParsedReference, bool) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(reference))
	if m == nil {
		return ParsedReference{}, false
	}
	date, err := time.Parse(referenceDateLayout, m[1])
	if err != nil {
		return ParsedReference{}, false
	}
	ordinal, err := strconv.Atoi(m[3])
	if err != nil || ordinal < 1 {
		return ParsedReference{}, false
	}
	return ParsedReference{Date: date, ClientCode: m[2], Ordinal: ordinal}, true
}

// AssignReferences fills in pallet references in place. Existing references
// keyed by ordinal are kept so reprints match labels already on the floor.
func AssignReferences(partition *model.Partition, date time.Time, clientName string, existing map[int]string) {
	for i := range partition.Pallets {
		number := partition.Pallets[i].Number
		if ref, ok := existing[number]; ok && ref != "" {
			partition.Pallets[i].Reference = ref
			continue
		}
		partition.Pallets[i].Reference = GenerateReference(date, clientName, number)
	}
}
