package store

import "carebridge-server/internal/models"

// Seed returns the fixed dataset the dashboard starts from: eight
// patients, eight doctors, ten appointments, and ten messages across five
// threads. Appointments and messages link to the seeded records by id.
func Seed() Dataset {
	return Dataset{
		Patients:     seedPatients(),
		Doctors:      seedDoctors(),
		Appointments: seedAppointments(),
		Messages:     seedMessages(),
	}
}

func seedPatients() []models.Patient {
	return []models.Patient{
		{
			ID: "1", Name: "Sarah Johnson", Age: 32,
			Phone: "+1 (555) 123-4567", Email: "sarah.johnson@email.com",
			LastVisit: "2024-01-15", Condition: "Diabetes Type 2",
			Status: models.PatientActive, RiskLevel: models.RiskMedium,
			Address: "123 Oak Street, Springfield, IL 62701",
			EmergencyContact: models.EmergencyContact{
				Name: "John Johnson", Phone: "+1 (555) 123-4568", Relationship: "Spouse",
			},
			Insurance:            "Blue Cross Blue Shield",
			PrimaryCarePhysician: "Dr. Amanda Rodriguez",
			Allergies:            []string{"Penicillin", "Sulfa drugs"},
			Medications:          []string{"Metformin 500mg", "Glipizide 5mg"},
			BloodType:            "O+", Height: `5'6"`, Weight: "165 lbs", BMI: 26.6,
			LastLabResults:  "2024-01-10 - A1C: 7.2%",
			NextAppointment: "2024-01-25 2:00 PM",
			Notes:           "Patient shows good compliance with medication. Blood sugar levels improving.",
		},
		{
			ID: "2", Name: "Michael Chen", Age: 45,
			Phone: "+1 (555) 234-5678", Email: "michael.chen@email.com",
			LastVisit: "2024-01-10", Condition: "Hypertension",
			Status: models.PatientActive, RiskLevel: models.RiskHigh,
			Address: "456 Maple Avenue, Chicago, IL 60601",
			EmergencyContact: models.EmergencyContact{
				Name: "Lisa Chen", Phone: "+1 (555) 234-5679", Relationship: "Sister",
			},
			Insurance:            "Aetna",
			PrimaryCarePhysician: "Dr. James Wilson",
			Allergies:            []string{"Shellfish", "Latex"},
			Medications:          []string{"Lisinopril 10mg", "Amlodipine 5mg"},
			BloodType:            "A+", Height: `5'10"`, Weight: "185 lbs", BMI: 26.5,
			LastLabResults:  "2024-01-08 - BP: 145/95 mmHg",
			NextAppointment: "2024-01-20 10:00 AM",
			Notes:           "Blood pressure still elevated. Consider medication adjustment.",
		},
		{
			ID: "3", Name: "Emma Wilson", Age: 28,
			Phone: "+1 (555) 345-6789", Email: "emma.wilson@email.com",
			LastVisit: "2024-01-08", Condition: "Asthma",
			Status: models.PatientActive, RiskLevel: models.RiskLow,
			Address: "789 Pine Street, Milwaukee, WI 53201",
			EmergencyContact: models.EmergencyContact{
				Name: "Robert Wilson", Phone: "+1 (555) 345-6790", Relationship: "Father",
			},
			Insurance:            "UnitedHealth",
			PrimaryCarePhysician: "Dr. Sarah Chen",
			Allergies:            []string{"Dust mites", "Pollen", "Pet dander"},
			Medications:          []string{"Albuterol inhaler", "Fluticasone 220mcg"},
			BloodType:            "B+", Height: `5'4"`, Weight: "125 lbs", BMI: 21.5,
			LastLabResults:  "2024-01-05 - Peak flow: 450 L/min",
			NextAppointment: "2024-01-22 3:30 PM",
			Notes:           "Asthma well controlled. Peak flow measurements stable.",
		},
		{
			ID: "4", Name: "David Rodriguez", Age: 38,
			Phone: "+1 (555) 456-7890", Email: "david.rodriguez@email.com",
			LastVisit: "2024-01-05", Condition: "Heart Disease",
			Status: models.PatientInactive, RiskLevel: models.RiskHigh,
			Address: "321 Elm Street, Detroit, MI 48201",
			EmergencyContact: models.EmergencyContact{
				Name: "Maria Rodriguez", Phone: "+1 (555) 456-7891", Relationship: "Wife",
			},
			Insurance:            "Cigna",
			PrimaryCarePhysician: "Dr. Michael Johnson",
			Allergies:            []string{"Aspirin", "Ibuprofen"},
			Medications:          []string{"Metoprolol 25mg", "Atorvastatin 20mg"},
			BloodType:            "AB+", Height: `6'0"`, Weight: "200 lbs", BMI: 27.1,
			LastLabResults:  "2024-01-02 - Cholesterol: 180 mg/dL",
			NextAppointment: "2024-01-28 11:00 AM",
			Notes:           "Post-MI patient. Cardiac rehabilitation recommended.",
		},
		{
			ID: "5", Name: "Lisa Thompson", Age: 55,
			Phone: "+1 (555) 567-8901", Email: "lisa.thompson@email.com",
			LastVisit: "2024-01-12", Condition: "Arthritis",
			Status: models.PatientActive, RiskLevel: models.RiskMedium,
			Address: "654 Birch Lane, Cleveland, OH 44101",
			EmergencyContact: models.EmergencyContact{
				Name: "William Thompson", Phone: "+1 (555) 567-8902", Relationship: "Husband",
			},
			Insurance:            "Humana",
			PrimaryCarePhysician: "Dr. Emily Davis",
			Allergies:            []string{"Codeine", "Morphine"},
			Medications:          []string{"Celecoxib 200mg", "Acetaminophen 500mg"},
			BloodType:            "O-", Height: `5'7"`, Weight: "150 lbs", BMI: 23.5,
			LastLabResults:  "2024-01-09 - ESR: 28 mm/hr",
			NextAppointment: "2024-01-26 1:00 PM",
			Notes:           "Rheumatoid arthritis. Joint mobility improving with treatment.",
		},
		{
			ID: "6", Name: "Robert Kim", Age: 41,
			Phone: "+1 (555) 678-9012", Email: "robert.kim@email.com",
			LastVisit: "2024-01-14", Condition: "Depression",
			Status: models.PatientActive, RiskLevel: models.RiskMedium,
			Address: "987 Cedar Road, Minneapolis, MN 55401",
			EmergencyContact: models.EmergencyContact{
				Name: "Jennifer Kim", Phone: "+1 (555) 678-9013", Relationship: "Wife",
			},
			Insurance:            "Kaiser Permanente",
			PrimaryCarePhysician: "Dr. Amanda Rodriguez",
			Allergies:            []string{"None known"},
			Medications:          []string{"Sertraline 100mg", "Bupropion 150mg"},
			BloodType:            "A-", Height: `5'9"`, Weight: "170 lbs", BMI: 25.1,
			LastLabResults:  "2024-01-12 - PHQ-9 Score: 8",
			NextAppointment: "2024-01-23 4:00 PM",
			Notes:           "Depression symptoms improving. Continue current medication regimen.",
		},
		{
			ID: "7", Name: "Maria Garcia", Age: 29,
			Phone: "+1 (555) 789-0123", Email: "maria.garcia@email.com",
			LastVisit: "2024-01-11", Condition: "Pregnancy",
			Status: models.PatientActive, RiskLevel: models.RiskLow,
			Address: "147 Willow Way, Denver, CO 80201",
			EmergencyContact: models.EmergencyContact{
				Name: "Carlos Garcia", Phone: "+1 (555) 789-0124", Relationship: "Husband",
			},
			Insurance:            "Anthem",
			PrimaryCarePhysician: "Dr. Sarah Chen",
			Allergies:            []string{"None known"},
			Medications:          []string{"Prenatal vitamins", "Folic acid"},
			BloodType:            "B-", Height: `5'5"`, Weight: "135 lbs", BMI: 22.5,
			LastLabResults:  "2024-01-08 - Ultrasound: Normal development",
			NextAppointment: "2024-01-24 2:30 PM",
			Notes:           "First pregnancy, 24 weeks. All prenatal screenings normal.",
		},
		{
			ID: "8", Name: "James Anderson", Age: 67,
			Phone: "+1 (555) 890-1234", Email: "james.anderson@email.com",
			LastVisit: "2024-01-09", Condition: "Prostate Cancer",
			Status: models.PatientActive, RiskLevel: models.RiskCritical,
			Address: "258 Spruce Street, Seattle, WA 98101",
			EmergencyContact: models.EmergencyContact{
				Name: "Patricia Anderson", Phone: "+1 (555) 890-1235", Relationship: "Wife",
			},
			Insurance:            "Medicare + AARP",
			PrimaryCarePhysician: "Dr. Michael Johnson",
			Allergies:            []string{"None known"},
			Medications:          []string{"Bicalutamide 50mg", "Leuprolide 3.75mg"},
			BloodType:            "O+", Height: `5'11"`, Weight: "175 lbs", BMI: 24.4,
			LastLabResults:  "2024-01-06 - PSA: 4.2 ng/mL",
			NextAppointment: "2024-01-21 9:00 AM",
			Notes:           "Prostate cancer in remission. Continue monitoring PSA levels.",
		},
	}
}

func seedDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID: "1", Name: "Dr. Amanda Rodriguez", Specialty: "Cardiology", Experience: "15 years",
			Phone: "+1 (555) 123-4567", Email: "amanda.rodriguez@carebridge.com",
			Location: "Main Building, Floor 3", Rating: 4.9, Patients: 127,
			NextAvailable: "2024-01-18 2:00 PM", Status: models.DoctorAvailable,
			LicenseNumber:  "MD123456",
			Education:      []string{"Harvard Medical School", "Johns Hopkins Residency"},
			Certifications: []string{"Board Certified Cardiologist", "FACC"},
			Languages:      []string{"English", "Spanish", "Portuguese"},
			Availability: models.WeeklyAvailability{
				"monday":    {"9:00 AM", "5:00 PM"},
				"tuesday":   {"9:00 AM", "5:00 PM"},
				"wednesday": {"9:00 AM", "5:00 PM"},
				"thursday":  {"9:00 AM", "5:00 PM"},
				"friday":    {"9:00 AM", "3:00 PM"},
				"saturday":  {"9:00 AM", "12:00 PM"},
				"sunday":    {"Closed"},
			},
			Specialties:          []string{"Interventional Cardiology", "Heart Failure", "Preventive Cardiology"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "City General Hospital"},
			ResearchInterests:    []string{"Heart failure management", "Preventive cardiology"},
			Publications:         23,
			Awards:               []string{"Best Cardiologist 2023", "Excellence in Patient Care"},
		},
		{
			ID: "2", Name: "Dr. James Wilson", Specialty: "Neurology", Experience: "12 years",
			Phone: "+1 (555) 234-5678", Email: "james.wilson@carebridge.com",
			Location: "North Wing, Floor 2", Rating: 4.8, Patients: 89,
			NextAvailable: "2024-01-19 10:00 AM", Status: models.DoctorBusy,
			LicenseNumber:  "MD234567",
			Education:      []string{"Stanford Medical School", "UCLA Residency"},
			Certifications: []string{"Board Certified Neurologist", "FANA"},
			Languages:      []string{"English", "French"},
			Availability: models.WeeklyAvailability{
				"monday":    {"8:00 AM", "6:00 PM"},
				"tuesday":   {"8:00 AM", "6:00 PM"},
				"wednesday": {"8:00 AM", "6:00 PM"},
				"thursday":  {"8:00 AM", "6:00 PM"},
				"friday":    {"8:00 AM", "4:00 PM"},
				"saturday":  {"Closed"},
				"sunday":    {"Closed"},
			},
			Specialties:          []string{"Movement Disorders", "Epilepsy", "Multiple Sclerosis"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "University Hospital"},
			ResearchInterests:    []string{"Parkinson's disease", "Epilepsy treatment"},
			Publications:         18,
			Awards:               []string{"Neurology Research Award", "Patient Choice Award"},
		},
		{
			ID: "3", Name: "Dr. Sarah Chen", Specialty: "Pediatrics", Experience: "8 years",
			Phone: "+1 (555) 345-6789", Email: "sarah.chen@carebridge.com",
			Location: "Children's Wing, Floor 1", Rating: 4.9, Patients: 156,
			NextAvailable: "2024-01-18 4:30 PM", Status: models.DoctorAvailable,
			LicenseNumber:  "MD345678",
			Education:      []string{"UCSF Medical School", "Children's Hospital Residency"},
			Certifications: []string{"Board Certified Pediatrician", "FAAP"},
			Languages:      []string{"English", "Mandarin", "Cantonese"},
			Availability: models.WeeklyAvailability{
				"monday":    {"8:30 AM", "6:30 PM"},
				"tuesday":   {"8:30 AM", "6:30 PM"},
				"wednesday": {"8:30 AM", "6:30 PM"},
				"thursday":  {"8:30 AM", "6:30 PM"},
				"friday":    {"8:30 AM", "5:00 PM"},
				"saturday":  {"9:00 AM", "2:00 PM"},
				"sunday":    {"Closed"},
			},
			Specialties:          []string{"General Pediatrics", "Adolescent Medicine", "Developmental Pediatrics"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "Children's Hospital"},
			ResearchInterests:    []string{"Childhood obesity", "Vaccine safety"},
			Publications:         12,
			Awards:               []string{"Pediatric Excellence Award", "Community Service Award"},
		},
		{
			ID: "4", Name: "Dr. Michael Johnson", Specialty: "Orthopedic Surgery", Experience: "20 years",
			Phone: "+1 (555) 456-7890", Email: "michael.johnson@carebridge.com",
			Location: "Surgery Center, Floor 4", Rating: 4.7, Patients: 98,
			NextAvailable: "2024-01-22 9:00 AM", Status: models.DoctorSurgery,
			LicenseNumber:  "MD456789",
			Education:      []string{"Yale Medical School", "Mayo Clinic Residency"},
			Certifications: []string{"Board Certified Orthopedic Surgeon", "FACS"},
			Languages:      []string{"English", "German"},
			Availability: models.WeeklyAvailability{
				"monday":    {"7:00 AM", "7:00 PM"},
				"tuesday":   {"7:00 AM", "7:00 PM"},
				"wednesday": {"7:00 AM", "7:00 PM"},
				"thursday":  {"7:00 AM", "7:00 PM"},
				"friday":    {"7:00 AM", "5:00 PM"},
				"saturday":  {"8:00 AM", "12:00 PM"},
				"sunday":    {"Closed"},
			},
			Specialties:          []string{"Joint Replacement", "Sports Medicine", "Trauma Surgery"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "Sports Medicine Institute"},
			ResearchInterests:    []string{"Minimally invasive surgery", "Joint preservation"},
			Publications:         31,
			Awards:               []string{"Surgical Excellence Award", "Sports Medicine Pioneer"},
		},
		{
			ID: "5", Name: "Dr. Emily Davis", Specialty: "Emergency Medicine", Experience: "10 years",
			Phone: "+1 (555) 567-8901", Email: "emily.davis@carebridge.com",
			Location: "Emergency Department", Rating: 4.8, Patients: 203,
			NextAvailable: "2024-01-18 6:00 PM", Status: models.DoctorOnCall,
			LicenseNumber:  "MD567890",
			Education:      []string{"Columbia Medical School", "NYU Residency"},
			Certifications: []string{"Board Certified Emergency Physician", "FACEP"},
			Languages:      []string{"English", "Spanish"},
			Availability: models.WeeklyAvailability{
				"monday":    {"24/7"},
				"tuesday":   {"24/7"},
				"wednesday": {"24/7"},
				"thursday":  {"24/7"},
				"friday":    {"24/7"},
				"saturday":  {"24/7"},
				"sunday":    {"24/7"},
			},
			Specialties:          []string{"Trauma", "Critical Care", "Toxicology"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "Trauma Center"},
			ResearchInterests:    []string{"Emergency response protocols", "Critical care outcomes"},
			Publications:         19,
			Awards:               []string{"Emergency Medicine Excellence", "Trauma Care Award"},
		},
		{
			ID: "6", Name: "Dr. Robert Martinez", Specialty: "Psychiatry", Experience: "14 years",
			Phone: "+1 (555) 678-9012", Email: "robert.martinez@carebridge.com",
			Location: "Mental Health Wing, Floor 2", Rating: 4.9, Patients: 112,
			NextAvailable: "2024-01-19 1:00 PM", Status: models.DoctorAvailable,
			LicenseNumber:  "MD678901",
			Education:      []string{"UCLA Medical School", "Stanford Residency"},
			Certifications: []string{"Board Certified Psychiatrist", "FAPA"},
			Languages:      []string{"English", "Spanish", "Italian"},
			Availability: models.WeeklyAvailability{
				"monday":    {"9:00 AM", "7:00 PM"},
				"tuesday":   {"9:00 AM", "7:00 PM"},
				"wednesday": {"9:00 AM", "7:00 PM"},
				"thursday":  {"9:00 AM", "7:00 PM"},
				"friday":    {"9:00 AM", "5:00 PM"},
				"saturday":  {"10:00 AM", "3:00 PM"},
				"sunday":    {"Closed"},
			},
			Specialties:          []string{"Depression", "Anxiety Disorders", "Bipolar Disorder"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "Mental Health Institute"},
			ResearchInterests:    []string{"Treatment-resistant depression", "Anxiety management"},
			Publications:         27,
			Awards:               []string{"Psychiatry Excellence Award", "Mental Health Advocate"},
		},
		{
			ID: "7", Name: "Dr. Jennifer Lee", Specialty: "Oncology", Experience: "16 years",
			Phone: "+1 (555) 789-0123", Email: "jennifer.lee@carebridge.com",
			Location: "Cancer Center, Floor 5", Rating: 4.9, Patients: 78,
			NextAvailable: "2024-01-20 11:00 AM", Status: models.DoctorAvailable,
			LicenseNumber:  "MD789012",
			Education:      []string{"Johns Hopkins Medical School", "MD Anderson Residency"},
			Certifications: []string{"Board Certified Oncologist", "FACP"},
			Languages:      []string{"English", "Korean", "Japanese"},
			Availability: models.WeeklyAvailability{
				"monday":    {"8:00 AM", "6:00 PM"},
				"tuesday":   {"8:00 AM", "6:00 PM"},
				"wednesday": {"8:00 AM", "6:00 PM"},
				"thursday":  {"8:00 AM", "6:00 PM"},
				"friday":    {"8:00 AM", "4:00 PM"},
				"saturday":  {"Closed"},
				"sunday":    {"Closed"},
			},
			Specialties:          []string{"Breast Cancer", "Lung Cancer", "Hematologic Malignancies"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "Cancer Research Institute"},
			ResearchInterests:    []string{"Immunotherapy", "Precision medicine"},
			Publications:         34,
			Awards:               []string{"Oncology Research Award", "Patient Care Excellence"},
		},
		{
			ID: "8", Name: "Dr. Thomas Brown", Specialty: "Dermatology", Experience: "11 years",
			Phone: "+1 (555) 890-1234", Email: "thomas.brown@carebridge.com",
			Location: "Dermatology Clinic, Floor 1", Rating: 4.8, Patients: 134,
			NextAvailable: "2024-01-18 3:00 PM", Status: models.DoctorAvailable,
			LicenseNumber:  "MD890123",
			Education:      []string{"Northwestern Medical School", "UCSF Residency"},
			Certifications: []string{"Board Certified Dermatologist", "FAAD"},
			Languages:      []string{"English", "French"},
			Availability: models.WeeklyAvailability{
				"monday":    {"8:30 AM", "5:30 PM"},
				"tuesday":   {"8:30 AM", "5:30 PM"},
				"wednesday": {"8:30 AM", "5:30 PM"},
				"thursday":  {"8:30 AM", "5:30 PM"},
				"friday":    {"8:30 AM", "4:30 PM"},
				"saturday":  {"9:00 AM", "2:00 PM"},
				"sunday":    {"Closed"},
			},
			Specialties:          []string{"Medical Dermatology", "Surgical Dermatology", "Cosmetic Dermatology"},
			HospitalAffiliations: []string{"CareBridge Medical Center", "Dermatology Institute"},
			ResearchInterests:    []string{"Skin cancer prevention", "Psoriasis treatment"},
			Publications:         21,
			Awards:               []string{"Dermatology Excellence Award", "Skin Cancer Prevention Award"},
		},
	}
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID: "1", PatientID: "1", DoctorID: "1", Patient: "Sarah Johnson", Doctor: "Dr. Amanda Rodriguez",
			Time: "9:00 AM", Date: "2024-01-18", Duration: "30 min",
			Type: models.TypeFollowUp, Status: models.StatusConfirmed,
			Reason:   "Diabetes follow-up and medication review",
			Location: "Room 302, Cardiology Wing",
			Notes:    "Patient reports improved blood sugar control. Review A1C results.",
			Symptoms: []string{"Fatigue", "Increased thirst"},
			Diagnosis: "Diabetes Type 2", Treatment: "Metformin adjustment",
			FollowUpDate: "2024-02-15", Insurance: "Blue Cross Blue Shield",
			Cost: 150, PaymentStatus: models.PaymentPaid,
		},
		{
			ID: "2", PatientID: "2", DoctorID: "2", Patient: "Michael Chen", Doctor: "Dr. James Wilson",
			Time: "10:30 AM", Date: "2024-01-18", Duration: "45 min",
			Type: models.TypeConsultation, Status: models.StatusConfirmed,
			Reason:   "Neurological consultation for headaches",
			Location: "Room 201, Neurology Wing",
			Notes:    "Patient experiencing frequent migraines. Consider imaging studies.",
			Symptoms: []string{"Severe headaches", "Nausea", "Light sensitivity"},
			Diagnosis: "Migraine", Treatment: "Sumatriptan prescription",
			FollowUpDate: "2024-02-01", Insurance: "Aetna",
			Cost: 200, PaymentStatus: models.PaymentPending,
		},
		{
			ID: "3", PatientID: "3", DoctorID: "3", Patient: "Emma Wilson", Doctor: "Dr. Sarah Chen",
			Time: "2:00 PM", Date: "2024-01-18", Duration: "30 min",
			Type: models.TypeFollowUp, Status: models.StatusPending,
			Reason:   "Pediatric asthma check-up",
			Location: "Room 105, Children's Wing",
			Notes:    "Monitor peak flow measurements and adjust inhaler dosage.",
			Symptoms: []string{"Wheezing", "Shortness of breath"},
			Diagnosis: "Asthma", Treatment: "Albuterol inhaler adjustment",
			FollowUpDate: "2024-02-08", Insurance: "UnitedHealth",
			Cost: 120, PaymentStatus: models.PaymentPaid,
		},
		{
			ID: "4", PatientID: "4", DoctorID: "4", Patient: "David Rodriguez", Doctor: "Dr. Michael Johnson",
			Time: "3:30 PM", Date: "2024-01-18", Duration: "60 min",
			Type: models.TypeFollowUp, Status: models.StatusConfirmed,
			Reason:   "Post-surgery follow-up",
			Location: "Room 410, Surgery Center",
			Notes:    "Post-MI patient. Check incision healing and cardiac function.",
			Symptoms: []string{"Chest discomfort", "Fatigue"},
			Diagnosis: "Post-MI status", Treatment: "Cardiac rehabilitation",
			FollowUpDate: "2024-02-12", Insurance: "Cigna",
			Cost: 250, PaymentStatus: models.PaymentPartial,
		},
		{
			ID: "5", PatientID: "5", DoctorID: "5", Patient: "Lisa Thompson", Doctor: "Dr. Emily Davis",
			Time: "4:00 PM", Date: "2024-01-18", Duration: "30 min",
			Type: models.TypeFollowUp, Status: models.StatusCancelled,
			Reason:   "Arthritis treatment follow-up",
			Location: "Room 205, Rheumatology",
			Notes:    "Patient cancelled due to transportation issues. Reschedule needed.",
			Symptoms: []string{"Joint pain", "Stiffness"},
			Diagnosis: "Rheumatoid arthritis", Treatment: "Celecoxib continuation",
			FollowUpDate: "2024-01-25", Insurance: "Humana",
			Cost: 180, PaymentStatus: models.PaymentWaived,
		},
		{
			ID: "6", PatientID: "6", DoctorID: "1", Patient: "Robert Kim", Doctor: "Dr. Amanda Rodriguez",
			Time: "9:00 AM", Date: "2024-01-19", Duration: "30 min",
			Type: models.TypeFollowUp, Status: models.StatusConfirmed,
			Reason:   "Routine check-up and depression monitoring",
			Location: "Room 302, Cardiology Wing",
			Notes:    "Monitor depression symptoms and medication effectiveness.",
			Symptoms: []string{"Depression", "Anxiety"},
			Diagnosis: "Major depressive disorder", Treatment: "Sertraline continuation",
			FollowUpDate: "2024-02-20", Insurance: "Kaiser Permanente",
			Cost: 150, PaymentStatus: models.PaymentPaid,
		},
		{
			ID: "7", PatientID: "7", DoctorID: "3", Patient: "Maria Garcia", Doctor: "Dr. Sarah Chen",
			Time: "11:00 AM", Date: "2024-01-19", Duration: "45 min",
			Type: models.TypeFollowUp, Status: models.StatusPending,
			Reason:   "Prenatal check-up",
			Location: "Room 105, Children's Wing",
			Notes:    "24-week prenatal visit. Check fetal development and maternal health.",
			Symptoms: []string{"None"},
			Diagnosis: "Normal pregnancy", Treatment: "Prenatal care continuation",
			FollowUpDate: "2024-02-02", Insurance: "Anthem",
			Cost: 200, PaymentStatus: models.PaymentPending,
		},
		{
			ID: "8", PatientID: "8", DoctorID: "4", Patient: "James Anderson", Doctor: "Dr. Michael Johnson",
			Time: "1:00 PM", Date: "2024-01-19", Duration: "60 min",
			Type: models.TypeConsultation, Status: models.StatusConfirmed,
			Reason:   "Prostate cancer monitoring",
			Location: "Room 410, Surgery Center",
			Notes:    "Monitor PSA levels and discuss treatment options.",
			Symptoms: []string{"None"},
			Diagnosis: "Prostate cancer in remission", Treatment: "Active surveillance",
			FollowUpDate: "2024-02-15", Insurance: "Medicare + AARP",
			Cost: 300, PaymentStatus: models.PaymentPaid,
		},
		{
			ID: "9", PatientID: "1", DoctorID: "8", Patient: "Sarah Johnson", Doctor: "Dr. Thomas Brown",
			Time: "2:30 PM", Date: "2024-01-19", Duration: "30 min",
			Type: models.TypeConsultation, Status: models.StatusConfirmed,
			Reason:   "Skin rash evaluation",
			Location: "Room 108, Dermatology Clinic",
			Notes:    "Patient reports new skin rash on arms and legs.",
			Symptoms: []string{"Skin rash", "Itching"},
			Diagnosis: "Contact dermatitis", Treatment: "Topical corticosteroid cream",
			FollowUpDate: "2024-02-05", Insurance: "Blue Cross Blue Shield",
			Cost: 175, PaymentStatus: models.PaymentPaid,
		},
		{
			ID: "10", PatientID: "2", DoctorID: "7", Patient: "Michael Chen", Doctor: "Dr. Jennifer Lee",
			Time: "3:00 PM", Date: "2024-01-19", Duration: "45 min",
			Type: models.TypeConsultation, Status: models.StatusPending,
			Reason:   "Cancer screening consultation",
			Location: "Room 501, Cancer Center",
			Notes:    "Discuss appropriate cancer screening based on age and risk factors.",
			Symptoms: []string{"None"},
			Diagnosis: "Preventive consultation", Treatment: "Screening recommendations",
			FollowUpDate: "2024-02-10", Insurance: "Aetna",
			Cost: 250, PaymentStatus: models.PaymentPending,
		},
	}
}

func seedMessages() []models.Message {
	return []models.Message{
		{
			ID: "1", SenderID: "1", Sender: "Sarah Johnson",
			Content:   "Hi Dr. Rodriguez, I hope you're doing well. I wanted to follow up on the care plan you sent me last week. I've been following the medication schedule, but I have a question about the evening dose timing.",
			Timestamp: "2024-01-18 10:30 AM", IsFromUser: false,
			Attachments: []string{}, Priority: models.PriorityNormal, Read: false, ThreadID: "1",
		},
		{
			ID: "2", SenderID: "1", Sender: "Dr. Amanda Rodriguez",
			Content:   "Hello Sarah! I'm glad you reached out. How has the new medication schedule been working for you? I can definitely help adjust the timing if needed.",
			Timestamp: "2024-01-18 10:45 AM", IsFromUser: true,
			Attachments: []string{}, Priority: models.PriorityNormal, Read: true, ThreadID: "1",
		},
		{
			ID: "3", SenderID: "1", Sender: "Sarah Johnson",
			Content:   "The morning dose has been fine, but I'm having trouble remembering the evening dose. Is there a way to adjust the timing or set a reminder?",
			Timestamp: "2024-01-18 11:00 AM", IsFromUser: false,
			Attachments: []string{}, Priority: models.PriorityNormal, Read: false, ThreadID: "1",
		},
		{
			ID: "4", SenderID: "1", Sender: "Dr. Amanda Rodriguez",
			Content:   "Absolutely! Let me adjust that for you. I'll send an updated schedule that might work better with your routine. We can also set up medication reminders through our patient portal.",
			Timestamp: "2024-01-18 11:15 AM", IsFromUser: true,
			Attachments: []string{}, Priority: models.PriorityNormal, Read: true, ThreadID: "1",
		},
		{
			ID: "5", SenderID: "2", Sender: "Dr. James Wilson",
			Content:   "Patient Michael Chen's lab results are ready for review. His glucose levels show improvement, but blood pressure is still elevated. Consider medication adjustment.",
			Timestamp: "2024-01-18 2:00 PM", IsFromUser: false,
			Attachments: []string{"lab_results.pdf"}, Priority: models.PriorityHigh, Read: false, ThreadID: "2",
		},
		{
			ID: "6", SenderID: "", Sender: "Nurse Kelly",
			Content:   "Emma Wilson completed her morning vitals check. Blood pressure is 120/80, heart rate 72 bpm. All within normal range.",
			Timestamp: "2024-01-18 6:00 AM", IsFromUser: false,
			Attachments: []string{"vitals_report.pdf"}, Priority: models.PriorityNormal, Read: true, ThreadID: "3",
		},
		{
			ID: "7", SenderID: "4", Sender: "David Rodriguez",
			Content:   "I'm experiencing some chest discomfort after the exercise routine you prescribed. Should I be concerned?",
			Timestamp: "2024-01-17 4:30 PM", IsFromUser: false,
			Attachments: []string{}, Priority: models.PriorityUrgent, Read: false, ThreadID: "4",
		},
		{
			ID: "8", SenderID: "4", Sender: "Dr. Michael Johnson",
			Content:   "David, please call the office immediately. Chest discomfort after exercise could be concerning. We need to evaluate this right away.",
			Timestamp: "2024-01-17 4:45 PM", IsFromUser: true,
			Attachments: []string{}, Priority: models.PriorityUrgent, Read: true, ThreadID: "4",
		},
		{
			ID: "9", SenderID: "5", Sender: "Lisa Thompson",
			Content:   "My arthritis symptoms have improved significantly with the new treatment plan. Thank you so much!",
			Timestamp: "2024-01-16 3:00 PM", IsFromUser: false,
			Attachments: []string{}, Priority: models.PriorityNormal, Read: true, ThreadID: "5",
		},
		{
			ID: "10", SenderID: "5", Sender: "Dr. Emily Davis",
			Content:   "That's wonderful news, Lisa! I'm so glad the treatment is working well for you. Keep up with the exercises we discussed.",
			Timestamp: "2024-01-16 3:15 PM", IsFromUser: true,
			Attachments: []string{}, Priority: models.PriorityNormal, Read: true, ThreadID: "5",
		},
	}
}
