package mdc

import (
	"testing"

	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
	"github.com/go-drift/materialweb/pkg/widgettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruitSelect(value any, onChange any) vdom.Node {
	return vdom.New(Select{}, props.New("id", "fruit", "label", "Fruit", "value", value, "onChange", onChange),
		vdom.New(SelectItem{}, props.New("value", "x"), "Ex"),
		vdom.New(SelectItem{}, props.New("value", "y"), "Why"),
	)
}

func selectedText(tester *widgettest.Tester) string {
	return tester.Find("#fruit-selected-text").Text()
}

func TestSelect_LabelAtMount(t *testing.T) {
	tester := widgettest.New(t)
	require.NoError(t, tester.PumpWidget(fruitSelect("y", nil)))

	assert.Equal(t, "Why", selectedText(tester))
	assert.Equal(t, "y", tester.Toolkit.Last(widget.KindSelect).Value())

	selected, _ := tester.Find(`li[data-value="y"]`).Attr("aria-selected")
	assert.Equal(t, "true", selected)
	other, _ := tester.Find(`li[data-value="x"]`).Attr("aria-selected")
	assert.Equal(t, "false", other)
}

func TestSelect_UserChoiceUpdatesLabelBeforeNotifying(t *testing.T) {
	tester := widgettest.New(t)
	var got []string
	onChange := func(value, label string) { got = append(got, value+":"+label) }
	require.NoError(t, tester.PumpWidget(fruitSelect("y", onChange)))

	s := tester.Toolkit.Last(widget.KindSelect)
	s.Choose("x")
	assert.Equal(t, []string{"x:Ex"}, got)

	require.NoError(t, tester.Pump())
	assert.Equal(t, "Ex", selectedText(tester))
}

func TestSelect_ValueOnlyCallback(t *testing.T) {
	tester := widgettest.New(t)
	var got string
	require.NoError(t, tester.PumpWidget(fruitSelect("y", func(v string) { got = v })))

	tester.Toolkit.Last(widget.KindSelect).Choose("x")
	assert.Equal(t, "x", got)
}

func TestSelect_ValuePropDrivesWidget(t *testing.T) {
	tester := widgettest.New(t)
	require.NoError(t, tester.PumpWidget(fruitSelect("y", nil)))
	s := tester.Toolkit.Last(widget.KindSelect)

	require.NoError(t, tester.PumpWidget(fruitSelect("x", nil)))
	assert.Equal(t, "x", s.Value())
	assert.Equal(t, "Ex", selectedText(tester))

	require.NoError(t, tester.PumpWidget(fruitSelect("z", nil)))
	assert.Equal(t, "z", s.Value())
	assert.Empty(t, selectedText(tester))

	assert.Len(t, tester.Toolkit.Widgets(widget.KindSelect), 1)
}

func TestSelect_ObservableValue(t *testing.T) {
	tester := widgettest.New(t)
	value := props.NewObservable("x")
	require.NoError(t, tester.PumpWidget(fruitSelect(value, nil)))
	assert.Equal(t, "Ex", selectedText(tester))

	value.Set("y")
	require.NoError(t, tester.Pump())
	assert.Equal(t, "y", tester.Toolkit.Last(widget.KindSelect).Value())
	assert.Equal(t, "Why", selectedText(tester))
}

func TestSelect_Markup(t *testing.T) {
	tester := widgettest.New(t)
	require.NoError(t, tester.PumpWidget(vdom.New(Select{}, props.New(
		"id", "s",
		"outlined", true,
		"filled", true,
		"required", true,
		"hint", "Pick one",
	), vdom.New(SelectItem{}, props.New("value", "a", "disabled", true), "A"))))

	root := tester.Find("#s")
	assert.True(t, root.HasClass("mdc-select--outlined"))
	assert.False(t, root.HasClass("mdc-select--filled"))
	assert.True(t, root.HasClass("mdc-select--required"))
	assert.True(t, root.HasClass("mdc-select--no-label"))
	assert.Equal(t, 1, root.Find(".mdc-notched-outline").Length())

	describedBy, _ := tester.Find(".mdc-select__anchor").Attr("aria-describedby")
	assert.Equal(t, "s-hint", describedBy)
	assert.Equal(t, "Pick one", tester.Find(".mdc-select-container #s-hint").Text())

	assert.True(t, tester.Find(`li[data-value="a"]`).HasClass("mdc-list-item--disabled"))
}

func TestSelect_EmptyValuedChoice(t *testing.T) {
	tester := widgettest.New(t)
	var got []string
	onChange := func(value, label string) { got = append(got, value+":"+label) }
	require.NoError(t, tester.PumpWidget(vdom.New(Select{}, props.New("id", "fruit", "value", "x", "onChange", onChange),
		vdom.New(SelectItem{}, props.New("value", ""), "None"),
		vdom.New(SelectItem{}, props.New("value", "x"), "Ex"),
	)))
	assert.Equal(t, "Ex", selectedText(tester))

	tester.Toolkit.Last(widget.KindSelect).Choose("")
	assert.Equal(t, []string{":None"}, got)

	require.NoError(t, tester.Pump())
	assert.Equal(t, "None", selectedText(tester))
}
