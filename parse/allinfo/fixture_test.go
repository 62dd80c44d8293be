package allinfo

// 测试用的All Info页面片段，结构取自congress.gov的117届议案页面

const overviewFixture = `
<div class="overview_wrapper bill">
  <div class="overview">
    <table>
      <tr><th>Sponsor:</th><td><a href="/member/john-sarbanes/S001168">Rep. Sarbanes, John P. [D-MD-3]</a> (Introduced 01/04/2021)</td></tr>
      <tr><th>Committees:</th><td>House - House Administration; Judiciary</td></tr>
      <tr><th>Committee Reports:</th><td><a href="/congressional-report/117th-congress/house-report/9">H. Rept. 117-9</a></td></tr>
      <tr><th>Latest Action:</th><td>Senate - 06/22/2021 Cloture motion not invoked.</td></tr>
      <tr><td>Tracker:</td><td><ol class="bill_progress"><li class="first">Introduced<div class="sol-step-info">Array
(
    [actionDate] => 2021-01-04
    [displayText] => Introduced in House
    [externalActionCode] => 1000
    [description] => Introduced
    [chamberOfAction] => House
)
</div></li><li class="selected last">Passed House<div class="sol-step-info">Array
(
    [actionDate] => 2021-03-03
    [displayText] => Passed/agreed to in House: On passage Passed by the Yeas and Nays: 220 - 210
    [externalActionCode] => 8000
    [description] => Passed House
    [chamberOfAction] => House
    [rollCallVote] => 62
)
</div></li></ol></td></tr>
    </table>
  </div>
  <div class="tertiary">
    <div class="tertiary_section">
      <h3>More on This Bill</h3>
      <ul>
        <li><a id="constAuthButton" href="#">Constitutional Authority Statement</a><script>var msg = '<bullet>Congress has the power to enact this legislation pursuant to the following:<br>[Congressional Record Volume 167, Number 1]<br>By Mr. SARBANES:<br>H.R. 1.<br><a href=\"/congressional-record/volume-167\">Article I, Section 4</a></bullet><h3>Ignored</h3>';</script></li>
        <li><a id="cboEstimateButton" href="#">CBO Cost Estimates [1]</a><script>var msg = '<p><a href=\"https://www.cbo.gov/publication/57003\">H.R. 1, For the People Act of 2021</a></p><p>See the <a href=\"https://www.cbo.gov/cost-estimates\">Cost Estimates Search page</a></p>';</script></li>
      </ul>
    </div>
    <div class="tertiary_section">
      <h3>Subject — Policy Area:</h3>
      <ul><li><a href="/search?q=gov">Government Operations and Politics</a></li></ul>
    </div>
    <div class="tertiary_section"><p>no heading</p></div>
  </div>
</div>`

const titlesFixture = `
<div id="titles-content"><div id="titles_main">
  <div class="titles-row">
    <div class="house-column">
      <h4>Official Title as Introduced</h4>
      <p>To expand Americans' access to the ballot box.</p>
      <h4>Short Titles as Introduced</h4>
      <p>For the People Act of 2021<br>For the People Act of 2021<br>Voter Empowerment Act of 2021</p>
      <h5>Short Titles as Introduced for portions of this bill</h5>
      <ul><li>Ethics in Government Act</li></ul>
    </div>
  </div>
</div></div>`

const actionsFixture = `
<div id="allActions-content"><table>
  <thead><tr><th>Date</th><th>Chamber</th><th>All Actions</th></tr></thead>
  <tbody>
    <tr><td>03/03/2021-3:54pm</td><td>House</td><td>On passage Passed by the Yeas and Nays: 220 - 210 (<a href="/roll-call/117/62">Roll no. 62</a>).</td></tr>
    <tr><td>01/04/2021</td><td> House </td><td>Introduced in House</td></tr>
  </tbody>
</table></div>`

const cosponsorsFixture = `
<div id="cosponsors-content"><table>
  <thead><tr><th>Cosponsor</th><th>Date Cosponsored</th></tr></thead>
  <tbody>
    <tr><td><a href="/member/zoe-lofgren/L000397">Rep. Lofgren, Zoe [D-CA-19]*</a></td><td>01/04/2021</td></tr>
    <tr><td><a href="/member/eleanor-norton/N000147">Del. Norton, Eleanor Holmes [D-DC-At Large]</a></td><td>01/26/2021</td></tr>
  </tbody>
</table></div>`

const committeesFixture = `
<div id="committees-content"><table>
  <thead><tr><th>Committee / Subcommittee</th><th>Date</th><th>Activity</th><th>Related Documents</th></tr></thead>
  <tbody>
    <tr class="committee"><th>House Administration</th><td>01/04/2021-12:05pm</td><td>Referred to</td><td></td></tr>
    <tr><td>02/26/2021</td><td>Reported by</td><td><a href="/congressional-report/117th-congress/house-report/9">H. Rept. 117-9</a></td></tr>
    <tr class="subcommittee"><th>Elections Subcommittee</th><td>unknown</td><td>Hearings</td><td></td></tr>
  </tbody>
</table></div>`

const relatedFixture = `
<div id="relatedBills-content"><table>
  <thead><tr><th>Bill</th><th>Latest Title</th><th>Relationships to H.R.1</th><th>Relationships Identified by</th><th>Latest Action</th></tr></thead>
  <tbody>
    <tr><td><a href="/bill/117th-congress/house-resolution/179">H.Res.179</a></td><td>Providing for consideration</td><td>Procedurally related (H.Res.179)</td><td>House</td><td>03/02/2021</td></tr>
    <tr class="relatedbill_exrow"><td colspan="5">extra</td></tr>
    <tr><td><a href="https://www.congress.gov/bill/117th-congress/senate-bill/1">S.1</a></td><td>For the People Act of 2021</td><td>Identical bill</td><td>CRS</td><td>08/11/2021</td></tr>
  </tbody>
</table></div>`

const subjectsFixture = `
<div id="subjects-content">
  <div class="search-column-nav"><ul><li>Government Operations and Politics</li></ul></div>
  <div class="search-column-main"><ul><li> Elections, voting, political campaign regulation </li><li>Voting rights</li></ul></div>
</div>`

const summariesFixture = `
<div id="allSummaries-content">
  <div id="summary-2"><h3>Shown Here:<br>Passed House (03/03/2021)</h3><p>For the People Act of 2021</p><p>This bill addresses voter access.</p></div>
  <div class="summary-nav">navigation</div>
  <div id="summary-1"><h3>Introduced in House (01/04/2021)</h3></div>
</div>`

func allInfoPage(sections ...string) string {
	page := "<html><head><title>All Info - H.R.1 - 117th Congress (2021-2022): For the People Act of 2021 | Congress.gov | Library of Congress</title></head><body>"
	for _, s := range sections {
		page += s
	}
	return page + "</body></html>"
}
