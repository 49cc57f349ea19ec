package bootstrap

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campus-connect/CampusTalk/internal/models"
	"github.com/campus-connect/CampusTalk/pkg/logger"
)

type SeedService struct {
	db *gorm.DB
}

func (s *SeedService) SeedAll() error {
	return s.seedFAQEntries()
}

// seedFAQEntries fills the FAQ table with the built-in campus data. The
// seed only runs against an empty table so operator edits survive
// restarts.
func (s *SeedService) seedFAQEntries() error {
	n, err := models.CountFAQEntries(s.db)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("faq seed skipped, table already populated", zap.Int64("entries", n))
		return nil
	}

	for i := range defaultFAQ {
		if err := models.CreateFAQEntry(s.db, &defaultFAQ[i]); err != nil {
			return err
		}
	}
	logger.Info("faq seed complete", zap.Int("entries", len(defaultFAQ)))
	return nil
}

// defaultFAQ is the built-in campus corpus: persona-scoped sets plus the
// generic set (empty persona) every audience falls back to.
var defaultFAQ = []models.FAQEntry{
	// student
	{Persona: "student", Question: "What are my course options?", Answer: "SAITM offers B.Tech programs in CSE, ECE, ME and Civil, plus BBA, BCA and MBA. Each program page on the website lists the detailed curriculum.", Category: "courses"},
	{Persona: "student", Question: "What are the library timings?", Answer: "The central library is open 9 AM to 8 PM on weekdays and 9 AM to 2 PM on Saturdays. It stays open later during exam weeks.", Category: "facilities"},
	{Persona: "student", Question: "What are the hostel facilities?", Answer: "Separate hostels for boys and girls with Wi-Fi, mess, laundry and 24x7 security. Rooms are allotted on a first-come basis after fee confirmation.", Category: "facilities"},
	{Persona: "student", Question: "How do I pay my fees?", Answer: "Fees can be paid online through the student portal or at the accounts office. Installment plans need prior approval from the accounts department.", Category: "fees"},
	{Persona: "student", Question: "When is the exam schedule released?", Answer: "Exam date sheets are published on the notice board and student portal about three weeks before exams begin.", Category: "academic"},
	{Persona: "student", Question: "What club activities are available?", Answer: "Technical clubs, a cultural society, sports teams and an entrepreneurship cell all recruit at the start of each semester.", Category: "activities"},
	{Persona: "student", Question: "How do I apply for a scholarship?", Answer: "Merit and need-based scholarships open every July. Apply through the student portal with your previous marksheets and income certificate.", Category: "fees"},

	// parent
	{Persona: "parent", Question: "What is the admission process?", Answer: "Admissions are based on JEE/state counselling or direct application. Submit the online form, required documents and the registration fee; the admissions office confirms within a week.", Category: "admission"},
	{Persona: "parent", Question: "What is the fee structure?", Answer: "B.Tech tuition is about 1.2 lakh per year; hostel and mess are separate. The full break-up by program is published on the fees page.", Category: "fees"},
	{Persona: "parent", Question: "What safety measures are on campus?", Answer: "The campus has 24x7 security, CCTV coverage, a medical room with a nurse on duty and an ambulance on call.", Category: "safety"},
	{Persona: "parent", Question: "How can I track academic performance?", Answer: "Parents receive semester result summaries by mail and can request a meeting with the class mentor at any time.", Category: "academic"},
	{Persona: "parent", Question: "Is transportation available?", Answer: "College buses cover Gurugram and nearby Delhi routes. Route lists and pass charges are available from the transport office.", Category: "transport"},
	{Persona: "parent", Question: "When are parent meetings held?", Answer: "A parent-teacher meeting is scheduled once per semester, usually two weeks after mid-term results.", Category: "meetings"},

	// visitor
	{Persona: "visitor", Question: "Can you give me a college overview?", Answer: "SAITM is an engineering and management institute in Gurugram affiliated to MDU Rohtak, with NBA-accredited programs and a 25-acre campus.", Category: "general"},
	{Persona: "visitor", Question: "What courses are offered?", Answer: "Undergraduate engineering (CSE, ECE, ME, Civil), BBA and BCA, and postgraduate MBA programs are offered.", Category: "courses"},
	{Persona: "visitor", Question: "What are the admission requirements?", Answer: "B.Tech requires 10+2 with PCM and a valid JEE score; management programs accept graduates from any stream. Details are on the admissions page.", Category: "admission"},
	{Persona: "visitor", Question: "Can I book a campus tour?", Answer: "Campus tours run on weekdays between 10 AM and 4 PM. Write to info@saitm.edu a day in advance to book a slot.", Category: "visit"},
	{Persona: "visitor", Question: "What are the placement records?", Answer: "Last year over 80 percent of eligible students were placed, with recruiters like TCS, Infosys, Wipro and Maruti visiting campus.", Category: "placement"},

	// generic
	{Question: "Where is the campus located?", Answer: "The campus is on NH-48, Gurugram, Haryana, about 20 minutes from IFFCO Chowk metro station.", Category: "contact"},
	{Question: "How do I contact the college?", Answer: "Call +91-124-2278183 or write to info@saitm.edu. The admissions and accounts offices are open 9 AM to 5 PM on working days.", Category: "contact"},
	{Question: "What are the office timings?", Answer: "Administrative offices work 9 AM to 5 PM, Monday through Saturday. Second Saturdays are off.", Category: "contact"},
	{Question: "Does the college have Wi-Fi?", Answer: "The whole campus including hostels is covered by Wi-Fi; students get login credentials at orientation.", Category: "facilities"},
	{Question: "Are there sports facilities?", Answer: "The campus has a cricket ground, basketball and volleyball courts, a gym and indoor games rooms.", Category: "facilities"},
}
