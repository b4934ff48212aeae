package academia

// rendered portal snapshots the parser tests run against, trimmed from a
// real session down to the structure the parsers rely on

const profileTableHtml = `
<table>
	<tr><td>Registration Number:</td><td>RA2111003010042</td></tr>
	<tr><td>Name:</td><td>ARJUN MENON</td></tr>
	<tr><td>Programme:</td><td>B.Tech</td></tr>
	<tr><td>Department:</td><td>Computer Science and Engineering</td></tr>
	<tr><td>Specialization:</td><td>Artificial Intelligence</td></tr>
	<tr><td>Semester:</td><td>5</td></tr>
	<tr><td>Feedback:</td><td>Not Submitted</td></tr>
	<tr><td>Photo-Id:</td><td><img src="https://portal.example/photo/42.jpg"/></td></tr>
	<tr><td>Enrollment Status / DOE:</td><td>Active / 02-Aug-2021</td></tr>
</table>`

const attendanceTableHtml = `
<table>
	<tr>
		<td>Course Code</td><td>Course Title</td><td>Category</td>
		<td>Faculty Name</td><td>Slot</td><td>Room No</td>
		<td>Hours Conducted</td><td>Hours Absent</td><td>Attn %</td>
	</tr>
	<tr>
		<td>21CSC301T<br>Regular</td><td>Formal Language and Automata</td><td>Theory</td>
		<td>Dr. K. Raman</td><td>A</td><td>TP401</td>
		<td>12</td><td>0</td><td>100.00</td>
	</tr>
	<tr>
		<td>21CSC302J<br>Regular</td><td>Computer Networks</td><td>Lab Based Theory</td>
		<td>Dr. S. Priya</td><td>B</td><td>TP612</td>
		<td>22</td><td>1</td><td>95.45</td>
	</tr>
	<tr>
		<td>21MAB204T<br>Arrear</td><td>Probability and Queueing Theory</td><td>Theory</td>
		<td>Dr. V. Kumar</td><td>C</td><td>TP115</td>
		<td>17</td><td>1</td><td>94.12</td>
	</tr>
</table>`

const marksTableHtml = `
<table>
	<tr><td>Course Code</td><td>Course Type</td><td>Test Performance</td></tr>
	<tr>
		<td>21CSC301T<br>Regular</td>
		<td>Theory</td>
		<td>
			<table>
				<tr>
					<td><font><strong>FT-I/25.00</strong><br>22.50</font></td>
					<td><font><strong>FT-II/25.00</strong><br>17.00</font></td>
					<td><font><strong>Quiz/5.00</strong><br>3.40</font></td>
					<td><font><strong>FT-III/25.00</strong><br>Abs</font></td>
				</tr>
			</table>
		</td>
	</tr>
	<tr>
		<td>21CSC302J<br>Regular</td>
		<td>Practical</td>
		<td><table><tr><td></td></tr></table></td>
	</tr>
</table>`

const portalSnapshotHtml = `<div class="mainDiv">
<table><tr><td>Academia</td></tr></table>
` + profileTableHtml + attendanceTableHtml + marksTableHtml + `
</div>`
