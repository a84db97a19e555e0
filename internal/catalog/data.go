package catalog

var practiceAreas = []PracticeArea{
	{ID: "criminal", Name: "Criminal Law", Icon: "⚖️", Description: "Bail, trial defence, FIR quashing and appeals."},
	{ID: "family", Name: "Family Law", Icon: "👨‍👩‍👧", Description: "Divorce, custody, maintenance and domestic disputes."},
	{ID: "corporate", Name: "Corporate Law", Icon: "🏢", Description: "Company formation, contracts, mergers and compliance."},
	{ID: "property", Name: "Property Law", Icon: "🏠", Description: "Title disputes, registration, tenancy and RERA matters."},
	{ID: "civil", Name: "Civil Litigation", Icon: "📜", Description: "Recovery suits, injunctions and civil appeals."},
	{ID: "tax", Name: "Tax Law", Icon: "💰", Description: "Income tax, GST assessments and tax appeals."},
	{ID: "labour", Name: "Labour & Employment", Icon: "👷", Description: "Wrongful termination, wages and workplace disputes."},
	{ID: "intellectual-property", Name: "Intellectual Property", Icon: "💡", Description: "Trademarks, copyright, patents and licensing."},
	{ID: "cyber", Name: "Cyber Law", Icon: "💻", Description: "Online fraud, data protection and IT Act offences."},
	{ID: "consumer", Name: "Consumer Protection", Icon: "🛒", Description: "Consumer forum complaints and product liability."},
}

var cities = []string{"Delhi", "Mumbai", "Bangalore", "Chennai", "Hyderabad", "Kolkata", "Pune", "Jaipur"}

var languages = []string{"English", "Hindi", "Marathi", "Tamil", "Telugu", "Kannada", "Malayalam", "Bengali", "Punjabi", "Urdu"}

var lawyers = []Lawyer{
	{
		ID: 1, Name: "Rajesh Kumar Sharma", City: "Delhi", Jurisdiction: "Delhi High Court",
		Specializations: []string{"criminal", "civil"}, Experience: 22, Rating: 9.4, ReviewCount: 312,
		FeesRange: "₹4,000 - ₹6,000", ConsultationFee: 5000, Languages: []string{"Hindi", "English", "Punjabi"},
		Gender: "Male", Verified: true, Education: "LL.B., Faculty of Law, University of Delhi",
		BarCouncilNumber: "D/1123/2002", TotalCases: 1450, PendingCases: 38,
		Bio:    "Senior criminal defence counsel with two decades of trial and appellate practice before the Delhi High Court.",
		Awards: []string{"Delhi Bar Association Excellence Award 2019"},
		Reviews: []Review{
			{ID: 1, Reviewer: "Amit Verma", Rating: 5, Text: "Secured bail within a week. Clear advice throughout.", Date: "2025-11-02", Helpful: 24},
			{ID: 2, Reviewer: "Neha Gupta", Rating: 4, Text: "Very knowledgeable, though hard to reach at times.", Date: "2025-08-19", Helpful: 9},
		},
	},
	{
		ID: 2, Name: "Priya Menon", City: "Mumbai", Jurisdiction: "Bombay High Court",
		Specializations: []string{"family", "civil"}, Experience: 15, Rating: 9.1, ReviewCount: 245,
		FeesRange: "₹3,000 - ₹5,000", ConsultationFee: 4000, Languages: []string{"English", "Hindi", "Malayalam", "Marathi"},
		Gender: "Female", Verified: true, Education: "LL.M., Government Law College, Mumbai",
		BarCouncilNumber: "MAH/2231/2009", TotalCases: 860, PendingCases: 27,
		Bio:    "Family law practitioner focused on mediated settlements, custody and maintenance proceedings.",
		Awards: []string{"Women in Law Leadership Award 2021"},
		Reviews: []Review{
			{ID: 1, Reviewer: "Sanjana Rao", Rating: 5, Text: "Handled my custody matter with real empathy.", Date: "2025-10-11", Helpful: 31},
			{ID: 2, Reviewer: "Rohit Kapoor", Rating: 5, Text: "Settled a long-running dispute through mediation.", Date: "2025-06-03", Helpful: 12},
		},
	},
	{
		ID: 3, Name: "Arjun Reddy", City: "Hyderabad", Jurisdiction: "Telangana High Court",
		Specializations: []string{"corporate", "tax"}, Experience: 12, Rating: 8.7, ReviewCount: 178,
		FeesRange: "₹3,000 - ₹4,000", ConsultationFee: 3500, Languages: []string{"English", "Telugu", "Hindi"},
		Gender: "Male", Verified: true, Education: "B.A. LL.B. (Hons.), NALSAR University of Law",
		BarCouncilNumber: "TS/0872/2012", TotalCases: 540, PendingCases: 19,
		Bio:    "Advises start-ups and mid-size companies on structuring, contracts and direct tax disputes.",
		Awards: []string{},
		Reviews: []Review{
			{ID: 1, Reviewer: "Kiran Rao", Rating: 4, Text: "Sharp on term sheets and founder agreements.", Date: "2025-09-14", Helpful: 7},
			{ID: 2, Reviewer: "Lakshmi Prasad", Rating: 5, Text: "Won our GST appeal. Highly recommended.", Date: "2025-03-22", Helpful: 15},
		},
	},
	{
		ID: 4, Name: "Sneha Iyer", City: "Chennai", Jurisdiction: "Madras High Court",
		Specializations: []string{"property", "consumer"}, Experience: 9, Rating: 8.2, ReviewCount: 96,
		FeesRange: "₹2,000 - ₹3,000", ConsultationFee: 2500, Languages: []string{"English", "Tamil"},
		Gender: "Female", Verified: true, Education: "B.L., Dr. Ambedkar Government Law College, Chennai",
		BarCouncilNumber: "TN/1543/2016", TotalCases: 310, PendingCases: 22,
		Bio:    "Property and consumer forum advocate handling title verification and builder disputes.",
		Awards: []string{},
		Reviews: []Review{
			{ID: 1, Reviewer: "Vignesh S", Rating: 4, Text: "Thorough title check before our purchase.", Date: "2025-07-30", Helpful: 5},
			{ID: 2, Reviewer: "Divya R", Rating: 3, Text: "Good outcome but the process felt slow.", Date: "2025-01-12", Helpful: 2},
		},
	},
	{
		ID: 5, Name: "Vikram Singh Rathore", City: "Jaipur", Jurisdiction: "Rajasthan High Court",
		Specializations: []string{"criminal", "property"}, Experience: 18, Rating: 8.9, ReviewCount: 204,
		FeesRange: "₹2,500 - ₹3,500", ConsultationFee: 3000, Languages: []string{"Hindi", "English"},
		Gender: "Male", Verified: true, Education: "LL.B., University of Rajasthan",
		BarCouncilNumber: "R/0456/2006", TotalCases: 1020, PendingCases: 41,
		Bio:    "Trial lawyer for criminal and land matters across Rajasthan district courts and the High Court.",
		Awards: []string{"Rajasthan Bar Council Honour 2018"},
		Reviews: []Review{
			{ID: 1, Reviewer: "Mahendra Choudhary", Rating: 5, Text: "Recovered our ancestral land after years.", Date: "2025-05-17", Helpful: 18},
			{ID: 2, Reviewer: "Pooja Sharma", Rating: 4, Text: "Confident in court and well prepared.", Date: "2024-12-08", Helpful: 6},
		},
	},
	{
		ID: 6, Name: "Ananya Banerjee", City: "Kolkata", Jurisdiction: "Calcutta High Court",
		Specializations: []string{"family", "labour"}, Experience: 7, Rating: 7.8, ReviewCount: 64,
		FeesRange: "₹1,500 - ₹2,500", ConsultationFee: 2000, Languages: []string{"Bengali", "English", "Hindi"},
		Gender: "Female", Verified: false, Education: "LL.B., University of Calcutta",
		BarCouncilNumber: "WB/2210/2018", TotalCases: 190, PendingCases: 14,
		Bio:    "Represents employees in termination and wage claims and clients in matrimonial disputes.",
		Awards: []string{},
		Reviews: []Review{
			{ID: 1, Reviewer: "Sourav Das", Rating: 4, Text: "Got my pending dues released by the employer.", Date: "2025-04-04", Helpful: 3},
		},
	},
	{
		ID: 7, Name: "Karan Malhotra", City: "Delhi", Jurisdiction: "Supreme Court of India",
		Specializations: []string{"corporate", "intellectual-property"}, Experience: 10, Rating: 8.4, ReviewCount: 132,
		FeesRange: "₹4,000 - ₹5,000", ConsultationFee: 4500, Languages: []string{"English", "Hindi"},
		Gender: "Male", Verified: true, Education: "B.B.A. LL.B., National Law University, Delhi",
		BarCouncilNumber: "D/2987/2014", TotalCases: 410, PendingCases: 16,
		Bio:    "Trademark and commercial contracts specialist for technology and consumer brands.",
		Awards: []string{"IP Rising Star 2022"},
		Reviews: []Review{
			{ID: 1, Reviewer: "Ishita Jain", Rating: 5, Text: "Registered our trademark without a single objection.", Date: "2025-10-27", Helpful: 11},
			{ID: 2, Reviewer: "Harsh Vardhan", Rating: 4, Text: "Practical contract advice at a fair fee.", Date: "2025-02-15", Helpful: 4},
		},
	},
	{
		ID: 8, Name: "Fatima Sheikh", City: "Mumbai", Jurisdiction: "Bombay High Court",
		Specializations: []string{"cyber", "criminal"}, Experience: 14, Rating: 8.8, ReviewCount: 187,
		FeesRange: "₹3,500 - ₹4,500", ConsultationFee: 3800, Languages: []string{"English", "Hindi", "Urdu", "Marathi"},
		Gender: "Female", Verified: true, Education: "LL.M. (Cyber Law), University of Mumbai",
		BarCouncilNumber: "MAH/1190/2011", TotalCases: 620, PendingCases: 25,
		Bio:    "Cyber crime and data protection counsel, regularly assisting victims of online fraud.",
		Awards: []string{"Cyber Law Practitioner of the Year 2023"},
		Reviews: []Review{
			{ID: 1, Reviewer: "Aakash Mehta", Rating: 5, Text: "Recovered money lost to a UPI scam.", Date: "2025-09-01", Helpful: 22},
			{ID: 2, Reviewer: "Zoya Khan", Rating: 5, Text: "Explained every step of the complaint clearly.", Date: "2025-05-09", Helpful: 8},
		},
	},
	{
		ID: 9, Name: "Suresh Patil", City: "Pune", Jurisdiction: "Bombay High Court",
		Specializations: []string{"tax", "corporate"}, Experience: 25, Rating: 9.2, ReviewCount: 289,
		FeesRange: "₹5,000 - ₹7,000", ConsultationFee: 6000, Languages: []string{"Marathi", "English", "Hindi"},
		Gender: "Male", Verified: true, Education: "LL.B., ILS Law College, Pune; Chartered Accountant",
		BarCouncilNumber: "MAH/0341/1999", TotalCases: 1730, PendingCases: 33,
		Bio:    "Veteran tax litigator appearing before the ITAT and High Court on complex assessments.",
		Awards: []string{"Lifetime Contribution to Tax Jurisprudence 2020"},
		Reviews: []Review{
			{ID: 1, Reviewer: "Nikhil Kulkarni", Rating: 5, Text: "Got a large demand quashed at the ITAT.", Date: "2025-08-08", Helpful: 19},
			{ID: 2, Reviewer: "Anjali Joshi", Rating: 5, Text: "Unmatched depth on tax law.", Date: "2025-01-29", Helpful: 10},
		},
	},
	{
		ID: 10, Name: "Meera Nair", City: "Bangalore", Jurisdiction: "Karnataka High Court",
		Specializations: []string{"consumer", "civil"}, Experience: 5, Rating: 7.2, ReviewCount: 38,
		FeesRange: "₹1,000 - ₹2,000", ConsultationFee: 1500, Languages: []string{"English", "Kannada", "Malayalam"},
		Gender: "Female", Verified: false, Education: "B.A. LL.B., Christ University, Bangalore",
		BarCouncilNumber: "KAR/3312/2020", TotalCases: 85, PendingCases: 11,
		Bio:    "Consumer forum and small civil claims advocate offering affordable first consultations.",
		Awards: []string{},
		Reviews: []Review{
			{ID: 1, Reviewer: "Ravi Shankar", Rating: 4, Text: "Quick refund from a faulty appliance seller.", Date: "2025-06-21", Helpful: 2},
			{ID: 2, Reviewer: "Preeti Hegde", Rating: 3, Text: "Helpful but still building experience.", Date: "2025-03-02", Helpful: 1},
		},
	},
	{
		ID: 11, Name: "Aditya Joshi", City: "Bangalore", Jurisdiction: "Karnataka High Court",
		Specializations: []string{"intellectual-property", "cyber"}, Experience: 8, Rating: 7.9, ReviewCount: 71,
		FeesRange: "₹2,500 - ₹3,000", ConsultationFee: 2800, Languages: []string{"English", "Kannada", "Hindi"},
		Gender: "Male", Verified: true, Education: "LL.B., National Law School of India University",
		BarCouncilNumber: "KAR/2764/2017", TotalCases: 150, PendingCases: 9,
		Bio:    "Works with software companies on licensing, copyright and IT Act compliance.",
		Awards: []string{},
		Reviews: []Review{
			{ID: 1, Reviewer: "Tanvi Rao", Rating: 4, Text: "Clear guidance on our open-source licensing.", Date: "2025-07-12", Helpful: 3},
		},
	},
	{
		ID: 12, Name: "Kavita Deshmukh", City: "Pune", Jurisdiction: "Bombay High Court",
		Specializations: []string{"labour", "family"}, Experience: 16, Rating: 8.5, ReviewCount: 150,
		FeesRange: "₹3,000 - ₹3,500", ConsultationFee: 3200, Languages: []string{"Marathi", "Hindi", "English"},
		Gender: "Female", Verified: true, Education: "LL.M., Symbiosis Law School, Pune",
		BarCouncilNumber: "MAH/1876/2008", TotalCases: 740, PendingCases: 20,
		Bio:    "Labour court and industrial tribunal practitioner who also handles matrimonial matters.",
		Awards: []string{"Pune Bar Association Service Award 2017"},
		Reviews: []Review{
			{ID: 1, Reviewer: "Sachin More", Rating: 5, Text: "Reinstated after an illegal termination.", Date: "2025-09-23", Helpful: 13},
			{ID: 2, Reviewer: "Rekha Pawar", Rating: 4, Text: "Patient and well organised.", Date: "2025-04-18", Helpful: 5},
		},
	},
}

var questions = []Question{
	{
		ID: "q1", Category: "family", AskedBy: "Ritu S.", Date: "2025-10-02",
		Question: "How long does a mutual consent divorce take in India?",
		Answers: []Answer{
			{ID: "a1", LawyerID: 2, Date: "2025-10-03", Text: "Usually six to eighteen months. The six-month cooling period can be waived by the family court in suitable cases."},
		},
	},
	{
		ID: "q2", Category: "cyber", AskedBy: "Manoj P.", Date: "2025-09-18",
		Question: "I lost money in an online payment scam. What should I do first?",
		Answers: []Answer{
			{ID: "a2", LawyerID: 8, Date: "2025-09-18", Text: "Call 1930 and file a complaint on the national cyber crime portal immediately, then inform your bank in writing."},
			{ID: "a3", LawyerID: 11, Date: "2025-09-19", Text: "Preserve screenshots and transaction ids. Quick reporting greatly improves the chance of freezing the funds."},
		},
	},
	{
		ID: "q3", Category: "property", AskedBy: "Deepak K.", Date: "2025-08-27",
		Question: "Can a tenant be evicted without notice?",
		Answers: []Answer{
			{ID: "a4", LawyerID: 4, Date: "2025-08-28", Text: "No. The landlord must give notice as per the rent agreement and the applicable rent control law."},
		},
	},
	{
		ID: "q4", Category: "labour", AskedBy: "Sunita M.", Date: "2025-08-05",
		Question: "My employer has not paid my final settlement for three months. What are my options?",
		Answers: []Answer{
			{ID: "a5", LawyerID: 12, Date: "2025-08-06", Text: "Send a legal notice first. If unpaid, approach the labour commissioner or file a claim under the Payment of Wages Act."},
		},
	},
	{
		ID: "q5", Category: "criminal", AskedBy: "Anonymous", Date: "2025-07-21",
		Question: "What is the difference between regular bail and anticipatory bail?",
		Answers:  []Answer{},
	},
}
