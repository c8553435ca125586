package seed

var positions = []string{
	"Software Engineer",
	"Product Manager",
	"Data Scientist",
	"UX Designer",
	"DevOps Engineer",
}

var templateTypes = []string{
	"Initial Screening",
	"Technical Interview",
	"Final Interview",
	"Job Offer",
}

type customVariable struct {
	name         string
	displayName  string
	defaultValue string
}

var customVariables = []customVariable{
	{"company_name", "Company Name", "Northwind Ltd."},
	{"company_address", "Company Address", "123 Business St, Tech City"},
	{"interview_location", "Interview Location", "Conference Room A"},
	{"interview_platform", "Interview Platform", "Zoom Meeting"},
	{"salary", "Salary", "$85,000 annually"},
	{"benefits_summary", "Benefits Summary", "Health, Dental"},
	{"start_date", "Start Date", "January 15, 2026"},
	{"response_deadline", "Response Deadline", "December 30, 2026"},
}

type recipient struct {
	name     string
	email    string
	position string
}

var recipients = []recipient{
	{"John Doe", "john.doe@example.com", "Software Engineer"},
	{"Jane Smith", "jane.smith@example.com", "Product Manager"},
	{"Mike Johnson", "mike.johnson@example.com", "Data Scientist"},
	{"Sarah Wilson", "sarah.wilson@example.com", "UX Designer"},
	{"David Brown", "david.brown@example.com", "DevOps Engineer"},
	{"Lisa Davis", "lisa.davis@example.com", "Software Engineer"},
	{"Tom Anderson", "tom.anderson@example.com", "Product Manager"},
	{"Emily Taylor", "emily.taylor@example.com", "Data Scientist"},
	{"Chris Martinez", "chris.martinez@example.com", "UX Designer"},
	{"Amanda White", "amanda.white@example.com", "DevOps Engineer"},
}

type template struct {
	name         string
	templateType string
	subject      string
	body         string
}

var templates = []template{
	{
		name:         "Initial Screening Invitation",
		templateType: "Initial Screening",
		subject:      "Interview Invitation - {{position}} Position at {{company_name}}",
		body: `<h2>Interview Invitation</h2>
<p>Dear {{name}},</p>
<p>We are pleased to invite you for an initial screening interview for the {{position}} position at {{company_name}}.</p>
<p><strong>Interview Details:</strong></p>
<ul>
    <li><strong>Date &amp; Time:</strong> {{interview_datetime}}</li>
    <li><strong>Location:</strong> {{interview_location}}</li>
    <li><strong>Duration:</strong> 30 minutes</li>
</ul>
<p>Please confirm your availability by replying to this email.</p>
<p>Best regards,<br>{{company_name}} HR Team</p>`,
	},
	{
		name:         "Technical Interview Schedule",
		templateType: "Technical Interview",
		subject:      "Technical Interview Scheduled - {{position}} at {{company_name}}",
		body: `<h2>Technical Interview Scheduled</h2>
<p>Dear {{name}},</p>
<p>Your technical interview for the {{position}} position has been scheduled.</p>
<p><strong>Interview Details:</strong></p>
<ul>
    <li><strong>Date &amp; Time:</strong> {{interview_datetime}}</li>
    <li><strong>Platform:</strong> {{interview_platform}}</li>
    <li><strong>Duration:</strong> 60 minutes</li>
</ul>
<p>Please join the meeting 5 minutes early and have your portfolio ready if applicable.</p>
<p>Best regards,<br>{{company_name}} Technical Team</p>`,
	},
	{
		name:         "Final Interview Invitation",
		templateType: "Final Interview",
		subject:      "Final Interview - {{position}} Position",
		body: `<h2>Final Interview Invitation</h2>
<p>Dear {{name}},</p>
<p>Congratulations! You have been selected for the final interview round for the {{position}} position.</p>
<p><strong>Final Interview Details:</strong></p>
<ul>
    <li><strong>Date &amp; Time:</strong> {{interview_datetime}}</li>
    <li><strong>Location:</strong> {{company_address}}</li>
    <li><strong>Duration:</strong> 90 minutes</li>
</ul>
<p>Please bring a copy of your resume and be prepared to discuss your experience in detail.</p>
<p>Best regards,<br>{{company_name}} Hiring Team</p>`,
	},
	{
		name:         "Job Offer Letter",
		templateType: "Job Offer",
		subject:      "Job Offer - {{position}} Position at {{company_name}}",
		body: `<h2>Job Offer</h2>
<p>Dear {{name}},</p>
<p>We are delighted to extend a job offer for the {{position}} position at {{company_name}}.</p>
<p><strong>Offer Details:</strong></p>
<ul>
    <li><strong>Position:</strong> {{position}}</li>
    <li><strong>Salary:</strong> {{salary}}</li>
    <li><strong>Start Date:</strong> {{start_date}}</li>
    <li><strong>Benefits:</strong> {{benefits_summary}}</li>
</ul>
<p>Please review the attached offer letter and let us know your decision by {{response_deadline}}.</p>
<p>Best regards,<br>{{company_name}} HR Team</p>`,
	},
}

var sampleSubjects = []string{
	"Interview Scheduled - Software Engineer Position",
	"Technical Interview Invitation - Product Manager",
	"Final Round Interview - Data Scientist",
	"Job Offer - UX Designer Position",
	"Follow-up Interview - DevOps Engineer",
}
