package layout

import (
	"strconv"

	"github.com/wippyai/datcodec/errors"
	"github.com/wippyai/datcodec/transcoder/internal/types"
)

// Slot is one field of a record as seen by the calculator.
type Slot struct {
	Type    types.Type
	Name    string
	Pointer bool
}

// Info is the computed layout of a record.
type Info struct {
	Offsets []int
	Widths  []int
	Size    int
}

type Calculator struct {
	cache map[types.Type]int
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[types.Type]int),
	}
}

// SlotWidth returns the number of record-region bytes a field of type t
// consumes, or types.VariableWidth when t cannot be stored that way.
//
// A pointer slot is a 4-byte heap offset, except for lists whose slot is the
// 8-byte count and offset header. A pointer stored inline is transparent and
// takes the footprint of its target.
func (c *Calculator) SlotWidth(t types.Type, pointer bool) int {
	if pointer {
		if _, ok := t.(*types.List); ok {
			return types.ListSlotWidth
		}
		return types.OffsetSlotWidth
	}
	if cached, ok := c.cache[t]; ok {
		return cached
	}
	var w int
	switch v := t.(type) {
	case *types.Pointer:
		w = c.SlotWidth(v.Ref(), types.IsIndirect(v.Ref()))
	case *types.List:
		w = types.VariableWidth
	default:
		w = t.FixedWidth()
	}
	c.cache[t] = w
	return w
}

// Record lays out slots sequentially.
func (c *Calculator) Record(slots []Slot) (Info, error) {
	info := Info{
		Offsets: make([]int, len(slots)),
		Widths:  make([]int, len(slots)),
	}

	offset := 0
	for i, s := range slots {
		if s.Type == nil {
			return Info{}, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(slotName(s, i)).
				Detail("field has no type").
				Build()
		}
		w := c.SlotWidth(s.Type, s.Pointer)
		if w == types.VariableWidth {
			return Info{}, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
				Path(slotName(s, i)).
				Schema(s.Type.Name()).
				Detail("type has no fixed inline width; store it by pointer").
				Build()
		}
		info.Offsets[i] = offset
		info.Widths[i] = w
		offset += w
	}
	info.Size = offset

	return info, nil
}

func slotName(s Slot, i int) string {
	if s.Name != "" {
		return s.Name
	}
	return "field" + strconv.Itoa(i)
}
