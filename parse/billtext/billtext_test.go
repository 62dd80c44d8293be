package billtext

import (
	"strings"
	"testing"

	"github.com/dszqbsm/congress/bill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiVersionPage = `<html><head><title>Text - H.R.1 - 117th Congress (2021-2022): For the People Act of 2021 | Congress.gov | Library of Congress</title></head>
<body>
<div id="bill-summary">
  <div id="textSelector">
    <select>
      <option value="/bill/117th-congress/house-bill/1/text/ih">Introduced in House (01/04/2021)</option>
      <option value="/bill/117th-congress/house-bill/1/text/eh">Engrossed in House (03/03/2021)</option>
    </select>
  </div>
</div>
</body></html>`

const versionPage = `<html><head><title>Text - H.R.1 - 117th Congress (2021-2022) | Congress.gov | Library of Congress</title></head>
<body>
<ul class="cdg-summary-wrapper-list">
  <li><a href="/117/bills/hr1/BILLS-117hr1ih.htm?format=txt">TXT</a></li>
  <li><a href="/117/bills/hr1/BILLS-117hr1ih.xml?download=true">XML (with formatting)</a></li>
  <li><a href="/117/bills/hr1/BILLS-117hr1ih.xml">XML/HTML (new window)</a></li>
  <li><a href="/117/bills/hr1/BILLS-117hr1ih.pdf">PDF (1MB)</a></li>
</ul>
<pre id="billTextContainer">
117th CONGRESS
  1st Session
                                H. R. 1
</pre>
</body></html>`

func TestParse_Versions(t *testing.T) {
	p, err := Parse(strings.NewReader(multiVersionPage))
	require.NoError(t, err)
	require.NoError(t, p.Valid())

	assert.Equal(t, []Version{
		{Name: "ih", URL: "https://www.congress.gov/bill/117th-congress/house-bill/1/text/ih?format=txt"},
		{Name: "eh", URL: "https://www.congress.gov/bill/117th-congress/house-bill/1/text/eh?format=txt"},
	}, p.Versions)
	assert.Nil(t, p.Text)
	assert.Empty(t, p.Formats("ih"))
}

func TestParse_Text(t *testing.T) {
	p, err := Parse(strings.NewReader(versionPage))
	require.NoError(t, err)

	assert.Empty(t, p.Versions)
	require.NotNil(t, p.Text)
	assert.Contains(t, *p.Text, "H. R. 1")

	assert.Equal(t, []bill.Link{
		{Text: "PDF", URL: "https://www.congress.gov/117/bills/hr1/BILLS-117hr1ih.pdf"},
		{Text: "XML", URL: "https://www.congress.gov/117/bills/hr1/BILLS-117hr1ih.xml"},
	}, p.Formats("ih"))
	assert.Equal(t, []bill.Link{
		{Text: "PDF", URL: "https://www.congress.gov/117/bills/hr1/BILLS-117hr1ih.pdf"},
	}, p.Formats("pl"))
}

func TestPage_Valid(t *testing.T) {
	p, err := Parse(strings.NewReader(`<html><head><title>All Info - H.R.1</title></head></html>`))
	require.NoError(t, err)
	assert.ErrorIs(t, p.Valid(), ErrInvalidTitle)
}
