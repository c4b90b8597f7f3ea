package s3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gymhub/infras/s3"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name   string
		object s3.Object
		want   string
	}{
		{name: "prefixed", object: s3.Object{Prefix: "exports", Name: "sessions-Ada-Lovelace-all.xml"}, want: "exports/sessions-Ada-Lovelace-all.xml"},
		{name: "no prefix", object: s3.Object{Name: "booking-history-Mia-Wong.xml"}, want: "booking-history-Mia-Wong.xml"},
		{name: "name cannot climb out of the prefix", object: s3.Object{Prefix: "exports", Name: "../secrets/booking.xml"}, want: "exports/booking.xml"},
		{name: "nested prefix is cleaned", object: s3.Object{Prefix: "exports//2025/", Name: "a.xml"}, want: "exports/2025/a.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.object.Key())
		})
	}
}
