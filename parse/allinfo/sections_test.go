package allinfo

import (
	"testing"
	"time"

	"github.com/dszqbsm/congress/bill"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestParser_Overview(t *testing.T) {
	p := New()
	ov, err := p.Overview(newDocument(t, allInfoPage(overviewFixture)))
	require.NoError(t, err)

	want := Overview{
		Sponsor: &bill.Sponsor{
			Member: bill.Member{
				Title: bill.Representative, Party: "D", State: "MD", District: stringPtr("3"),
				LastName: "Sarbanes", FullName: "John P. Sarbanes",
			},
			URL:        "https://www.congress.gov/member/john-sarbanes/S001168",
			BioguideID: "S001168",
		},
		Tracker: []bill.TrackerStep{
			{Date: date(2021, 1, 4, 0, 0), Type: "Introduced", Text: "Introduced in House", Code: "1000", Chamber: "House"},
			{
				Date: date(2021, 3, 3, 0, 0), Type: "Passed House",
				Text: "Passed/agreed to in House: On passage Passed by the Yeas and Nays: 220 - 210",
				Code: "8000", Chamber: "House",
				Extra: map[string]string{"rollCallVote": "62"},
			},
		},
		Reports: []bill.Link{{Title: "H. Rept. 117-9", URL: "https://www.congress.gov/congressional-report/117th-congress/house-report/9"}},
	}
	if diff := cmp.Diff(want, ov); diff != "" {
		t.Errorf("Overview() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_OverviewErrors(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{name: "unknown key", row: `<tr><th>Amendments:</th><td>3</td></tr>`},
		{name: "three cells", row: `<tr><td>a</td><td>b</td><td>c</td></tr>`},
		{name: "tracker without date", row: `<tr><th>Tracker:</th><td><ol class="bill_progress"><li><div class="sol-step-info">Array
(
    [description] => Introduced
)
</div></li></ol></td></tr>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := allInfoPage(`<div class="overview_wrapper bill"><div class="overview"><table>` + tt.row + `</table></div></div>`)
			_, err := New().Overview(newDocument(t, page))
			assert.ErrorIs(t, err, ErrUnknownLayout)
		})
	}
}

func TestParser_OverviewMissing(t *testing.T) {
	ov, err := New().Overview(newDocument(t, allInfoPage()))
	require.NoError(t, err)
	assert.Equal(t, Overview{}, ov)
}

func TestParser_Tertiary(t *testing.T) {
	tr, err := New().Tertiary(newDocument(t, allInfoPage(overviewFixture)))
	require.NoError(t, err)

	require.NotNil(t, tr.ConstitutionalAuthorityStatement)
	assert.Equal(t,
		"Congress has the power to enact this legislation pursuant to the following:\nBy Mr. SARBANES:\nH.R. 1.\nArticle I, Section 4",
		*tr.ConstitutionalAuthorityStatement)
	assert.Equal(t, []bill.Link{{Title: "H.R. 1, For the People Act of 2021", URL: "https://www.cbo.gov/publication/57003"}}, tr.CBOEstimates)
	require.NotNil(t, tr.PolicyArea)
	assert.Equal(t, "Government Operations and Politics", *tr.PolicyArea)
}

func TestParser_TertiaryErrors(t *testing.T) {
	tests := []struct {
		name    string
		section string
	}{
		{name: "unknown button", section: `<h3>More on This Bill</h3><ul><li><a id="amendmentsButton">Amendments</a></li></ul>`},
		{name: "button without id", section: `<h3>More on This Bill</h3><ul><li><a>Amendments</a></li></ul>`},
		{name: "empty policy area", section: `<h3>Subject — Policy Area:</h3><ul></ul>`},
		{name: "authority tag", section: `<h3>More on This Bill</h3><ul><li><a id="constAuthButton">CAS</a><script>var msg = '<table></table>';</script></li></ul>`},
		{name: "authority without script", section: `<h3>More on This Bill</h3><ul><li><a id="constAuthButton">CAS</a></li></ul>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := allInfoPage(`<div class="overview_wrapper bill"><div class="tertiary"><div class="tertiary_section">` + tt.section + `</div></div></div>`)
			_, err := New().Tertiary(newDocument(t, page))
			assert.ErrorIs(t, err, ErrUnknownLayout)
		})
	}
}

func TestParser_TertiarySupportingMembers(t *testing.T) {
	page := allInfoPage(`<div class="overview_wrapper bill"><div class="tertiary"><div class="tertiary_section"><h3>More on This Bill</h3><ul><li><a id="supportingMembersBtn">Supporting Members</a></li></ul></div></div></div>`)
	tr, err := New().Tertiary(newDocument(t, page))
	require.NoError(t, err)
	assert.Equal(t, Tertiary{}, tr)
}

func TestParser_Titles(t *testing.T) {
	titles, err := New().Titles(newDocument(t, allInfoPage(titlesFixture)))
	require.NoError(t, err)

	want := []bill.Title{
		{Scope: bill.ScopeFull, Type: bill.TitleOfficial, Chamber: "house", Title: "To expand Americans' access to the ballot box.", Label: "Introduced"},
		{Scope: bill.ScopeFull, Type: bill.TitleShort, Chamber: "house", Title: "For the People Act of 2021", Label: "Introduced"},
		{Scope: bill.ScopeFull, Type: bill.TitleShort, Chamber: "house", Title: "Voter Empowerment Act of 2021", Label: "Introduced"},
		{Scope: bill.ScopePartial, Type: bill.TitleShort, Chamber: "house", Title: "Ethics in Government Act", Label: "Introduced"},
	}
	assert.Equal(t, want, titles)
}

func TestParser_TitlesBlocks(t *testing.T) {
	three := `<div id="titles-content"><div id="titles_main">
<div class="shortTitles">skipped</div>
<div class="titles-row"><div class="senate-column"><h4>Official Titles as Introduced</h4><p>A bill.</p></div></div>
<div class="officialTitles"></div>
</div></div>`
	titles, err := New().Titles(newDocument(t, allInfoPage(three)))
	require.NoError(t, err)
	assert.Equal(t, []bill.Title{
		{Scope: bill.ScopeFull, Type: bill.TitleOfficial, Chamber: "senate", Title: "A bill.", Label: "Introduced"},
	}, titles)

	wrongClass := `<div id="titles-content"><div id="titles_main"><div class="a"></div><div class="b"></div><div class="c"></div></div></div>`
	_, err = New().Titles(newDocument(t, allInfoPage(wrongClass)))
	assert.ErrorIs(t, err, ErrUnknownLayout)

	two := `<div id="titles-content"><div id="titles_main"><div></div><div></div></div></div>`
	_, err = New().Titles(newDocument(t, allInfoPage(two)))
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestParser_Actions(t *testing.T) {
	actions, err := New().Actions(newDocument(t, allInfoPage(actionsFixture)))
	require.NoError(t, err)

	want := []bill.Action{
		{
			Date:   date(2021, 3, 3, 15, 54),
			By:     stringPtr("House"),
			Action: "On passage Passed by the Yeas and Nays: 220 - 210 (Roll no. 62).",
			Links:  []bill.Link{{Text: "Roll no. 62", URL: "https://www.congress.gov/roll-call/117/62"}},
		},
		{Date: date(2021, 1, 4, 0, 0), By: stringPtr("House"), Action: "Introduced in House", Links: []bill.Link{}},
	}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Errorf("Actions() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_ActionsInlineBy(t *testing.T) {
	page := allInfoPage(`<div id="allActions-content"><table>
<thead><tr><th>Date</th><th>All Actions</th></tr></thead>
<tbody>
<tr><td>01/04/2021</td><td>Referred to the Committee on House Administration. <span>Action By: House of Representatives</span></td></tr>
<tr><td>01/05/2021</td><td>Sponsor introductory remarks on measure.</td></tr>
<tr><td>01/06/2021</td><td>Referred to the Committee.
<br/>
<span>Action By: House of Representatives</span></td></tr>
</tbody></table></div>`)
	actions, err := New().Actions(newDocument(t, page))
	require.NoError(t, err)
	require.Len(t, actions, 3)

	assert.Equal(t, "Referred to the Committee on House Administration.", actions[0].Action)
	require.NotNil(t, actions[0].By)
	assert.Equal(t, "House of Representatives", *actions[0].By)
	assert.Nil(t, actions[1].By)
	assert.Equal(t, "Sponsor introductory remarks on measure.", actions[1].Action)

	// 标记前的换行和br不留在动作文本中
	assert.Equal(t, "Referred to the Committee.", actions[2].Action)
	require.NotNil(t, actions[2].By)
	assert.Equal(t, "House of Representatives", *actions[2].By)
}

func TestParser_ActionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{name: "unknown columns", table: `<thead><tr><th>When</th><th>What</th></tr></thead>`},
		{name: "bad marker", table: `<thead><tr><th>Date</th><th>All Actions</th></tr></thead><tbody><tr><td>01/04/2021</td><td>x <span>Committee</span></td></tr></tbody>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := allInfoPage(`<div id="allActions-content"><table>` + tt.table + `</table></div>`)
			_, err := New().Actions(newDocument(t, page))
			assert.ErrorIs(t, err, ErrUnknownLayout)
		})
	}
}

func TestParser_Cosponsors(t *testing.T) {
	cosponsors, err := New().Cosponsors(newDocument(t, allInfoPage(cosponsorsFixture)))
	require.NoError(t, err)
	require.Len(t, cosponsors, 2)

	assert.Equal(t, "Zoe Lofgren", cosponsors[0].Cosponsor.FullName)
	assert.True(t, date(2021, 1, 4, 0, 0).Equal(cosponsors[0].Date))
	assert.Nil(t, cosponsors[0].Withdrawn)
	assert.Equal(t, bill.Delegate, cosponsors[1].Cosponsor.Title)
	assert.Equal(t, "At Large", *cosponsors[1].Cosponsor.District)
}

func TestParser_CosponsorsWithdrawn(t *testing.T) {
	page := allInfoPage(`<div id="cosponsors-content"><table>
<thead><tr><th>Cosponsors Who Withdrew</th><th>Date Cosponsored</th><th>Date Withdrawn</th><th>CR Explanation</th></tr></thead>
<tbody><tr><td>Rep. Golden, Jared F. [D-ME-2]</td><td>01/04/2021</td><td>02/10/2021</td><td><a href="/congressional-record/volume-167/issue-25/house-section/article/H512-1"> Withdrawal </a></td></tr></tbody>
</table></div>`)
	cosponsors, err := New().Cosponsors(newDocument(t, page))
	require.NoError(t, err)
	require.Len(t, cosponsors, 1)

	w := cosponsors[0].Withdrawn
	require.NotNil(t, w)
	assert.True(t, date(2021, 2, 10, 0, 0).Equal(w.Date))
	assert.Equal(t, bill.Link{Text: "Withdrawal", URL: "/congressional-record/volume-167/issue-25/house-section/article/H512-1"}, w.Explanation)
}

func TestParser_CosponsorsMissing(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no panel", body: ``},
		{name: "no header", body: `<div id="cosponsors-content"><p>No cosponsors.</p></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cosponsors, err := New().Cosponsors(newDocument(t, allInfoPage(tt.body)))
			require.NoError(t, err)
			assert.NotNil(t, cosponsors)
			assert.Empty(t, cosponsors)
		})
	}
}

func TestParser_Committees(t *testing.T) {
	committees, err := New().Committees(newDocument(t, allInfoPage(committeesFixture)))
	require.NoError(t, err)
	require.Len(t, committees, 3)

	first := date(2021, 1, 4, 12, 5)
	second := date(2021, 2, 26, 0, 0)
	want := []bill.CommitteeActivity{
		{Name: "House Administration", Date: &first, Activity: "Referred to", RelatedDocuments: []bill.Link{}},
		{
			Name: "House Administration", Date: &second, Activity: "Reported by",
			RelatedDocuments: []bill.Link{{Text: "H. Rept. 117-9", URL: "https://www.congress.gov/congressional-report/117th-congress/house-report/9"}},
		},
		{Name: "Elections Subcommittee", Activity: "Hearings", RelatedDocuments: []bill.Link{}, IsSubcommittee: true},
	}
	if diff := cmp.Diff(want, committees); diff != "" {
		t.Errorf("Committees() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_CommitteesWithoutHeader(t *testing.T) {
	page := allInfoPage(`<div id="committees-content"><table>
<thead><tr><th>Committee / Subcommittee</th><th>Date</th><th>Activity</th><th>Related Documents</th></tr></thead>
<tbody><tr><td>01/04/2021</td><td>Referred to</td><td></td></tr></tbody>
</table></div>`)
	_, err := New().Committees(newDocument(t, page))
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestParser_Related(t *testing.T) {
	related, err := New().Related(newDocument(t, allInfoPage(relatedFixture)))
	require.NoError(t, err)
	assert.Equal(t, []bill.RelatedBill{
		{URL: "https://www.congress.gov/bill/117th-congress/house-resolution/179", Relationship: "Procedurally related", By: "House"},
		{URL: "https://www.congress.gov/bill/117th-congress/senate-bill/1", Relationship: "Identical bill", By: "CRS"},
	}, related)
}

func TestParser_Subjects(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		policyArea     *string
		wantSubjects   []string
		wantPolicyArea *string
		wantErr        error
	}{
		{
			name:           "consistent policy area",
			body:           subjectsFixture,
			policyArea:     stringPtr("Government Operations and Politics"),
			wantSubjects:   []string{"Elections, voting, political campaign regulation", "Voting rights"},
			wantPolicyArea: stringPtr("Government Operations and Politics"),
		},
		{
			name:       "mismatch",
			body:       subjectsFixture,
			policyArea: stringPtr("Health"),
			wantErr:    ErrPolicyAreaMismatch,
		},
		{
			name:    "nil recorded policy area",
			body:    subjectsFixture,
			wantErr: ErrPolicyAreaMismatch,
		},
		{
			name:           "private legislation backfill",
			body:           `<div id="subjects-content"><div class="search-column-main"><ul><li>Private Legislation</li><li>Immigration status and procedures</li></ul></div></div>`,
			wantSubjects:   []string{"Private Legislation", "Immigration status and procedures"},
			wantPolicyArea: stringPtr("Private Legislation"),
		},
		{
			name:         "no subject list",
			body:         `<div id="subjects-content"></div>`,
			wantSubjects: []string{},
		},
		{
			name:    "two policy areas",
			body:    `<div id="subjects-content"><div class="search-column-nav"><ul><li>A</li><li>B</li></ul></div></div>`,
			wantErr: ErrUnknownLayout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Subjects(newDocument(t, allInfoPage(tt.body)), tt.policyArea)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubjects, got.Subjects)
			assert.Equal(t, tt.wantPolicyArea, got.PolicyArea)
		})
	}
}

func TestParser_Summaries(t *testing.T) {
	summaries, err := New().Summaries(newDocument(t, allInfoPage(summariesFixture)))
	require.NoError(t, err)
	assert.Equal(t, []bill.Summary{
		{Title: "Passed House", Text: "For the People Act of 2021\nThis bill addresses voter access."},
		{Title: "Introduced in House", Text: ""},
	}, summaries)
}
