//go:build unit

package resource_test

import (
	"sort"
	"strings"
	"testing"

	"booking-scheduler/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	tests := []struct {
		name    string
		kind    resource.Kind
		rname   string
		order   int
		wantErr error
	}{
		{name: "practitioner", kind: resource.KindPractitioner, rname: "Dr. Smith"},
		{name: "room", kind: resource.KindRoom, rname: "Room 1", order: 3},
		{name: "unknown kind", kind: resource.Kind("desk"), rname: "Desk", wantErr: resource.ErrInvalidKind},
		{name: "blank name", kind: resource.KindRoom, rname: "   ", wantErr: resource.ErrEmptyResourceName},
		{name: "long name", kind: resource.KindRoom, rname: strings.Repeat("a", 256), wantErr: resource.ErrResourceNameTooLong},
		{name: "negative order", kind: resource.KindRoom, rname: "Room", order: -1, wantErr: resource.ErrNegativeOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resource.NewResource(uuid.New(), tt.kind, tt.rname, tt.order)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.Active())
			assert.Equal(t, tt.kind, r.Kind())
			assert.Equal(t, tt.kind.String()+":"+r.ID().String(), r.LockKey())
		})
	}
}

func TestLess_OrdersByDisplayOrderThenID(t *testing.T) {
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	r1, _ := resource.NewResource(idB, resource.KindRoom, "R1", 1)
	r2, _ := resource.NewResource(idA, resource.KindRoom, "R2", 2)
	r3, _ := resource.NewResource(idA, resource.KindRoom, "R3", 1)

	list := []*resource.Resource{r2, r1, r3}
	sort.SliceStable(list, func(i, j int) bool { return resource.Less(list[i], list[j]) })

	assert.Equal(t, []string{"R3", "R1", "R2"}, []string{list[0].Name(), list[1].Name(), list[2].Name()})
}
