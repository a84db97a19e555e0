package catalog

type Lawyer struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	City             string   `json:"city"`
	Jurisdiction     string   `json:"jurisdiction"`
	Specializations  []string `json:"specializations"`
	Experience       int      `json:"experience"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"reviewCount"`
	FeesRange        string   `json:"feesRange"`
	ConsultationFee  int      `json:"consultationFee"`
	Languages        []string `json:"languages"`
	Gender           string   `json:"gender"`
	Verified         bool     `json:"verified"`
	Education        string   `json:"education"`
	BarCouncilNumber string   `json:"barCouncilNumber"`
	Bio              string   `json:"bio"`
	TotalCases       int      `json:"totalCases"`
	PendingCases     int      `json:"pendingCases"`
	Awards           []string `json:"awards"`
	Reviews          []Review `json:"reviews"`
}

type Review struct {
	ID       int    `json:"id"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Helpful  int    `json:"helpful"`
}

type PracticeArea struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Category string   `json:"category"`
	AskedBy  string   `json:"askedBy"`
	Date     string   `json:"date"`
	Answers  []Answer `json:"answers"`
}

type Answer struct {
	ID       string `json:"id"`
	LawyerID int    `json:"lawyerId"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}

type Stats struct {
	TotalLawyers    int `json:"totalLawyers"`
	VerifiedLawyers int `json:"verifiedLawyers"`
	TotalReviews    int `json:"totalReviews"`
}

type ReviewSummary struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution []StarCount `json:"distribution"`
}

type StarCount struct {
	Stars int `json:"stars"`
	Count int `json:"count"`
}
