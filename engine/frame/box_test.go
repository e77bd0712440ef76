package frame

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestLayoutLengthConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	l, err := Absolute(12)
	assert.NoError(t, err)
	assert.Equal(t, AbsoluteLength, l.Kind())
	assert.Equal(t, float32(12), l.Value())
	assert.Equal(t, "12px", l.String())
	//
	l, err = Proportion(0.5)
	assert.NoError(t, err)
	assert.True(t, l.IsProportion())
	assert.Equal(t, "50%", l.String())
	//
	var zero LayoutLength
	assert.Equal(t, MustAbsolute(0), zero)
}

func TestLayoutLengthRejectsNegative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	_, err := Absolute(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Proportion(-0.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Absolute(math32.NaN())
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Proportion(math32.Inf(1))
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Panics(t, func() { MustAbsolute(-3) })
}

func TestThicknessShorthand(t *testing.T) {
	assert.Equal(t, "4px", UniformThickness(4).String())
	assert.Equal(t, "1px 2px", Thickness{1, 2, 1, 2}.String())
	assert.Equal(t, "1px 2px 3px", Thickness{1, 2, 3, 2}.String())
	assert.Equal(t, "1px 2px 3px 4px", Thickness{1, 2, 3, 4}.String())
	assert.Equal(t, "-1.5px", UniformThickness(-1.5).String())
	//
	m := Thickness{1, 2, 3, 4}
	assert.Equal(t, float32(6), m.Horizontal())
	assert.Equal(t, float32(4), m.Vertical())
	assert.Equal(t, Thickness{2, 4, 6, 8}, m.Scale(2))
}

func TestCornerRadius(t *testing.T) {
	assert.Equal(t, "3px", UniformRadius(3).String())
	assert.Equal(t, "1px 2px", CornerRadius{1, 2, 1, 2}.String())
	assert.Equal(t, "1px 2px 3px", CornerRadius{1, 2, 3, 2}.String())
	assert.Equal(t, "1px 2px 3px 4px", CornerRadius{1, 2, 3, 4}.String())
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, CornerRadius{1, 2, 3, 4}.ToVec4())
	assert.Equal(t, CornerRadius{2, 4, 6, 8}, CornerRadius{1, 2, 3, 4}.Scale(2))
}

func TestDefaultElementLayoutInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	info := DefaultElementLayoutInfo()
	assert.Equal(t, MustProportion(1), info.Width)
	assert.Equal(t, MustProportion(1), info.Height)
	assert.Equal(t, HAlignCenter, info.HorizontalAlignment)
	assert.Equal(t, VAlignCenter, info.VerticalAlignment)
	t.Logf(info.DebugString())
}

func TestParseFlow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	tests := []struct {
		input string
		flow  Flow
	}{
		{"none", Flow{}},
		{"row", Flow{Row, NoWrap}},
		{"Column Wrap", Flow{Column, Wrap}},
		{"RowReverse WrapReverse", Flow{RowReverse, WrapReverse}},
		{"column-reverse no-wrap", Flow{ColumnReverse, NoWrap}},
		{"  row   wrap-reverse ", Flow{Row, WrapReverse}},
	}
	for i, test := range tests {
		f, err := ParseFlow(test.input)
		assert.NoError(t, err, "test #%d", i)
		assert.Equal(t, test.flow, f, "test #%d", i)
	}
	for _, s := range []string{"", "diagonal", "row wrap extra", "row sideways"} {
		_, err := ParseFlow(s)
		assert.ErrorIs(t, err, ErrFlowFormat, "input %q", s)
	}
}

func TestFlowStringRoundTrip(t *testing.T) {
	for _, d := range allDirections {
		for _, w := range allWrapModes {
			f := Flow{d, w}
			g, err := ParseFlow(f.String())
			assert.NoError(t, err)
			if d == None {
				assert.Equal(t, Flow{}, g)
			} else {
				assert.Equal(t, f, g)
			}
		}
	}
	assert.Equal(t, "→↵", Flow{Row, Wrap}.Symbol())
	assert.True(t, RowReverse.IsReverse())
	assert.False(t, Column.IsHorizontal())
}
