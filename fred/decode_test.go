package fred

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleCategory(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{
			name: "root element",
			xml:  `<category id="125" parent_id="13" name="Trade Balance"/>`,
		},
		{
			name: "wrapped in container",
			xml: `<?xml version="1.0" encoding="utf-8" ?>
<categories>
  <category id="125" name="Trade Balance" parent_id="13"/>
</categories>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parseSingle([]byte(tt.xml), "category", decodeCategory)
			require.NoError(t, err)
			assert.Equal(t, Category{ID: 125, ParentID: 13, Name: "Trade Balance"}, c)
		})
	}
}

func TestParseSingleErrors(t *testing.T) {
	t.Run("missing required attribute", func(t *testing.T) {
		_, err := parseSingle([]byte(`<release name="Employment Situation"/>`), "release", decodeRelease)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)

		var mErr *MalformedResponseError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "release", mErr.Element)
		assert.Equal(t, "id", mErr.Field)
	})

	t.Run("invalid integer", func(t *testing.T) {
		_, err := parseSingle([]byte(`<release id="abc" name="x"/>`), "release", decodeRelease)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("invalid xml", func(t *testing.T) {
		_, err := parseSingle([]byte(`<category id="1"`), "category", decodeCategory)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("record absent", func(t *testing.T) {
		_, err := parseSingle([]byte(`<seriess></seriess>`), "series", decodeSeries)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestParseListFilter(t *testing.T) {
	data := `<release_tables release_id="53">
  <element element_id="1" release_id="53" name="First"/>
  <note>bookkeeping</note>
  <element element_id="2" release_id="53" name="Second"/>
  <element element_id="3" release_id="53" name="Third"/>
</release_tables>`

	elems, err := parseList([]byte(data), "element", decodeElement)
	require.NoError(t, err)
	require.Len(t, elems, 3)
	assert.Equal(t, "First", elems[0].Name)
	assert.Equal(t, "Second", elems[1].Name)
	assert.Equal(t, "Third", elems[2].Name)
	assert.Equal(t, 3, elems[2].ElementID)
}

func TestParseElementTree(t *testing.T) {
	t.Run("attributes", func(t *testing.T) {
		data := `<release_tables>
  <element element_id="10" release_id="53" parent_id="" series_id="" name="Section" type="section" line="1" level="0">
    <children>
      <element element_id="11" release_id="53" parent_id="10" series_id="GDP" name="Gross domestic product" type="series" line="2" level="1"/>
      <element element_id="12" release_id="53" parent_id="10" series_id="PCEC" name="Personal consumption" type="series" line="3" level="1">
        <children/>
      </element>
    </children>
  </element>
</release_tables>`

		elems, err := parseList([]byte(data), "element", decodeElement)
		require.NoError(t, err)
		require.Len(t, elems, 1)

		root := elems[0]
		assert.Nil(t, root.SeriesID)
		assert.Nil(t, root.ParentID)
		assert.Equal(t, "section", root.Type)
		require.Len(t, root.Children, 2)

		first := root.Children[0]
		assert.Equal(t, 11, first.ElementID)
		require.NotNil(t, first.SeriesID)
		assert.Equal(t, "GDP", *first.SeriesID)
		require.NotNil(t, first.ParentID)
		assert.Equal(t, "10", *first.ParentID)
		assert.Equal(t, 1, first.Level)
		assert.Empty(t, root.Children[1].Children)
	})

	t.Run("child elements", func(t *testing.T) {
		data := `<release_tables>
  <element>
    <element_id>12886</element_id>
    <release_id>53</release_id>
    <series_id/>
    <parent_id/>
    <line>1</line>
    <type>header</type>
    <name>Table 1</name>
    <level>0</level>
    <children>
      <element>
        <element_id>12887</element_id>
        <release_id>53</release_id>
        <series_id>A191RL1Q225SBEA</series_id>
        <parent_id>12886</parent_id>
        <name>Real GDP</name>
        <level>1</level>
        <children/>
      </element>
    </children>
  </element>
</release_tables>`

		elems, err := parseList([]byte(data), "element", decodeElement)
		require.NoError(t, err)
		require.Len(t, elems, 1)
		assert.Equal(t, 12886, elems[0].ElementID)
		assert.Equal(t, "Table 1", elems[0].Name)
		assert.Nil(t, elems[0].SeriesID)
		require.Len(t, elems[0].Children, 1)
		assert.Equal(t, "A191RL1Q225SBEA", *elems[0].Children[0].SeriesID)
	})
}

func TestDecodeObservation(t *testing.T) {
	data := `<observations>
  <observation realtime_start="2024-01-01" realtime_end="2024-01-01" date="1929-01-01" value="1120.718"/>
  <observation realtime_start="2024-01-01" realtime_end="2024-01-01" date="1930-01-01" value="."/>
  <observation realtime_start="2024-01-01" realtime_end="2024-01-01" date="1931-01-01" value=" 1.5 "/>
</observations>`

	obs, err := parseList([]byte(data), "", decodeObservation)
	require.NoError(t, err)
	require.Len(t, obs, 3)

	assert.InDelta(t, 1120.718, obs[0].Value, 1e-9)
	assert.False(t, obs[0].Missing)
	assert.Equal(t, time.Date(1929, 1, 1, 0, 0, 0, 0, time.UTC), obs[0].Date)

	assert.True(t, obs[1].Missing)
	assert.Zero(t, obs[1].Value)

	assert.False(t, obs[2].Missing)
	assert.InDelta(t, 1.5, obs[2].Value, 1e-9)

	_, err = parseList([]byte(`<observations><observation date="1930-01-01" value="n/a"/></observations>`), "", decodeObservation)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeTag(t *testing.T) {
	data := `<tags>
  <tag name="usa" group_id="geo" notes="United States of America" created="2012-02-27 10:18:19-06" popularity="100" series_count="472574"/>
</tags>`

	tags, err := parseList([]byte(data), "", decodeTag)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	tag := tags[0]
	assert.Equal(t, TagGroupGeography, tag.GroupID)
	assert.Equal(t, "geo", tag.GroupIDRaw)
	assert.Equal(t, 472574, tag.SeriesCount)
	assert.Equal(t, 2012, tag.Created.Year())
	_, offset := tag.Created.Zone()
	assert.Equal(t, -6*3600, offset)

	_, err = parseList([]byte(`<tags><tag name="x" group_id="nope"/></tags>`), "", decodeTag)
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestDecodeSeries(t *testing.T) {
	data := `<seriess>
  <series id="GNPCA" realtime_start="2024-03-01" realtime_end="2024-03-01" title="Real Gross National Product"
    observation_start="1929-01-01" observation_end="2023-01-01" frequency="Annual" frequency_short="A"
    units="Billions of Chained 2017 Dollars" units_short="Bil. of Chn. 2017 $" seasonal_adjustment="Not Seasonally Adjusted"
    seasonal_adjustment_short="NSA" last_updated="2024-01-25 07:51:02-06" popularity="12" group_popularity="12"/>
</seriess>`

	s, err := parseSingle([]byte(data), "series", decodeSeries)
	require.NoError(t, err)
	assert.Equal(t, "GNPCA", s.ID)
	assert.Equal(t, "A", s.FrequencyShort)
	assert.Equal(t, "2024-01-25 07:51:02-06", s.LastUpdatedRaw)
	assert.Equal(t, 7, s.LastUpdated.Hour())

	_, err = parseSingle([]byte(`<series id="X" title="t" realtime_start="2024-03-01" realtime_end="2024-03-01" last_updated="yesterday"/>`), "series", decodeSeries)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeTextDates(t *testing.T) {
	rd, err := parseList([]byte(`<release_dates>
  <release_date release_id="9" release_name="Advance Monthly Sales for Retail and Food Services">2013-08-13</release_date>
</release_dates>`), "", decodeReleaseDate)
	require.NoError(t, err)
	require.Len(t, rd, 1)
	assert.Equal(t, 9, rd[0].ReleaseID)
	assert.Equal(t, time.Date(2013, 8, 13, 0, 0, 0, 0, time.UTC), rd[0].Date)

	vd, err := parseList([]byte(`<vintage_dates><vintage_date>1958-12-21</vintage_date><vintage_date>1959-02-19</vintage_date></vintage_dates>`), "", decodeVintageDate)
	require.NoError(t, err)
	require.Len(t, vd, 2)
	assert.Equal(t, 1959, vd[1].Date.Year())

	_, err = parseList([]byte(`<vintage_dates><vintage_date></vintage_date></vintage_dates>`), "", decodeVintageDate)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
