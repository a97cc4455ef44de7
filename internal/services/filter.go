package services

import (
	"sort"
	"strconv"
	"strings"
)

// keyBuilder renders filters into a canonical string: fields in the order
// they are added, values sorted and de-duplicated, empty fields omitted.
type keyBuilder struct {
	b strings.Builder
}

func (k *keyBuilder) strings(name string, values []string) *keyBuilder {
	if len(values) == 0 {
		return k
	}

	sorted := append([]string(nil), values...)
	sort.Strings(sorted)

	unique := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			unique = append(unique, v)
		}
	}

	if k.b.Len() > 0 {
		k.b.WriteByte('&')
	}
	k.b.WriteString(name)
	k.b.WriteByte('=')
	k.b.WriteString(strings.Join(unique, ","))
	return k
}

func (k *keyBuilder) uints(name string, values []uint) *keyBuilder {
	converted := make([]string, len(values))
	for i, v := range values {
		converted[i] = strconv.FormatUint(uint64(v), 10)
	}
	return k.strings(name, converted)
}

func (k *keyBuilder) String() string {
	return k.b.String()
}
