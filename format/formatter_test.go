package format_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"datetime-lab/datetime"
	"datetime-lab/format"
	"datetime-lab/mocks"
	"datetime-lab/timezone"
)

// fixture is 2024-03-07T09:05:02.042 UTC, a Thursday.
func fixture(t *testing.T) datetime.DateTime {
	t.Helper()
	dt, err := datetime.FromDateTime(2024, 3, 7, 9, 5, 2, 42, timezone.UTC)
	require.NoError(t, err)
	return dt
}

func TestFormat_Builtins(t *testing.T) {
	dt := fixture(t)

	cases := []struct {
		template string
		want     string
	}{
		{"{Y}", "2024"},
		{"{y}", "24"},
		{"{year}", "2024"},
		{"{year:6}", "002024"},
		{"{year:2}", "24"}, // right-truncated, not value-truncated
		{"{M}", "03"},
		{"{month}", "3"},
		{"{month:2}", "03"},
		{"{D}", "07"},
		{"{day}", "7"},
		{"{h}", "09"},
		{"{hour}", "9"},
		{"{m}", "05"},
		{"{minute}", "5"},
		{"{s}", "02"},
		{"{second}", "2"},
		{"{ms}", "042"},
		{"{ms:1}", "42"},
		{"{weekday}", "Thursday"},
		{"{weekday:short}", "Thu"},
		{"{Z}", "+00:00"},
		{"{z}", "+0000"},
		{"{{}", "{"},
		{"plain text", "plain text"},
		{"{D}/{M}/{Y} at {h}:{m}", "07/03/2024 at 09:05"},
	}

	for _, c := range cases {
		t.Run(c.template, func(t *testing.T) {
			req := require.New(t)
			out, err := format.New(c.template).Format(dt)
			req.NoError(err)
			req.Equal(c.want, out)
		})
	}
}

func TestFormat_OffsetSigns(t *testing.T) {
	req := require.New(t)

	render := func(offset int, template string) string {
		dt := datetime.FromTimestamp(0, timezone.FromOffset(offset))
		out, err := format.New(template).Format(dt)
		req.NoError(err)
		return out
	}

	req.Equal("+05:30", render(330, "{Z}"))
	req.Equal("-0930", render(-570, "{z}"))
	// Zero keeps the '+' sign
	req.Equal("+00:00", render(0, "{Z}"))
}

func TestFormat_NonPlaceholderBracesAreLiteral(t *testing.T) {
	dt := fixture(t)

	cases := []struct {
		template string
		want     string
	}{
		{"{}", "{}"},
		{"{:5}", "{:5}"},
		{"open { brace", "open { brace"},
		{"trailing {", "trailing {"},
		{"{}{Y}", "{}2024"},
	}

	for _, c := range cases {
		t.Run(c.template, func(t *testing.T) {
			req := require.New(t)
			out, err := format.New(c.template).Format(dt)
			req.NoError(err)
			req.Equal(c.want, out)
		})
	}
}

func TestFormat_UnknownSpecifier(t *testing.T) {
	req := require.New(t)

	_, err := format.New("before {nope} after").Format(fixture(t))
	req.EqualError(err, "Undefined component formatter 'nope'.")
}

func TestRegistry_Extension(t *testing.T) {
	// Owned registry: keeps the shared default clean across tests
	registry := format.NewRegistry()

	t.Run("should invoke a registered custom specifier", func(t *testing.T) {
		req := require.New(t)

		err := registry.Add("Q", func(v format.View, args string) string {
			return fmt.Sprintf("Q%d", (v.Month()+2)/3)
		})
		req.NoError(err)

		out, err := format.NewWithRegistry("{Q}", registry).Format(fixture(t))
		req.NoError(err)
		req.Equal("Q1", out)
	})

	t.Run("should refuse duplicate registration", func(t *testing.T) {
		req := require.New(t)

		err := registry.Add("Q", func(format.View, string) string { return "" })
		req.EqualError(err, "Format specifier Q is already taken.")

		// Built-ins are protected the same way
		err = registry.Add("Y", func(format.View, string) string { return "" })
		req.EqualError(err, "Format specifier Y is already taken.")
	})

	t.Run("should fail on a specifier that was never registered", func(t *testing.T) {
		req := require.New(t)

		_, err := format.NewWithRegistry("{Q2}", registry).Format(fixture(t))
		req.EqualError(err, "Undefined component formatter 'Q2'.")
	})

	t.Run("should list names in lexical order", func(t *testing.T) {
		req := require.New(t)

		names := registry.Names()
		req.Contains(names, "Q")
		req.Contains(names, "weekday")
		req.IsIncreasing(names)
	})
}

func TestAddFormatter_SharedRegistry(t *testing.T) {
	req := require.New(t)

	err := format.AddFormatter("epochDays", func(v format.View, args string) string {
		return "n/a"
	})
	req.NoError(err)

	out, err := format.New("{epochDays}").Format(fixture(t))
	req.NoError(err)
	req.Equal("n/a", out)

	err = format.AddFormatter("epochDays", func(format.View, string) string { return "" })
	req.EqualError(err, "Format specifier epochDays is already taken.")
}

func TestFormat_ReadsOnlyTheFieldsItNeeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	view := mocks.NewMockView(ctrl)

	// A template touching year and offset must not read anything else
	view.EXPECT().Year().Return(1987).Times(1)
	view.EXPECT().TimeZone().Return(timezone.FromOffset(-300)).Times(1)

	out, err := format.New("{Y}{z}").Format(view)
	req.NoError(err)
	req.Equal("1987-0500", out)
}

func TestSetFormat(t *testing.T) {
	req := require.New(t)

	f := format.New("{Y}")
	out, err := f.Format(fixture(t))
	req.NoError(err)
	req.Equal("2024", out)

	f.SetFormat("{D}")
	req.Equal("{D}", f.FormatString())

	out, err = f.Format(fixture(t))
	req.NoError(err)
	req.Equal("07", out)
}
