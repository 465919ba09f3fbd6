package repository

import "guidelight/internal/assistant/domain"

// defaultCareerPaths is the initial catalog.
func defaultCareerPaths() []domain.CareerPath {
	return []domain.CareerPath{
		{
			Name: "Data Science & AI", Category: "Technology",
			AvgSalary: "$95,000 - $140,000", Competition: "Medium", CompetitionScore: 60,
			Growth: "+35%", Skills: domain.StringList{"Python", "Machine Learning", "Statistics", "SQL"},
			Duration: "6-12 months", ROI: 95, DemandTrend: "Rising Fast", JobOpenings: "125,000+",
			Description: "High demand across industries with AI revolution. Entry barrier lowered with bootcamps.",
			TopRoles:    domain.StringList{"Data Scientist", "ML Engineer", "AI Researcher"},
			Certifications: domain.StringList{"Google Data Analytics", "IBM Data Science", "AWS ML Specialty"},
		},
		{
			Name: "Cybersecurity", Category: "Technology",
			AvgSalary: "$90,000 - $150,000", Competition: "Low", CompetitionScore: 35,
			Growth: "+33%", Skills: domain.StringList{"Network Security", "Ethical Hacking", "Cloud Security", "Compliance"},
			Duration: "4-8 months", ROI: 98, DemandTrend: "Critical Shortage", JobOpenings: "750,000+",
			Description: "Severe talent shortage with increasing cyber threats. High job security.",
			TopRoles:    domain.StringList{"Security Analyst", "Penetration Tester", "CISO"},
			Certifications: domain.StringList{"CompTIA Security+", "CEH", "CISSP"},
		},
		{
			Name: "Cloud Architecture (AWS/Azure)", Category: "Technology",
			AvgSalary: "$110,000 - $160,000", Competition: "Low-Medium", CompetitionScore: 45,
			Growth: "+28%", Skills: domain.StringList{"AWS", "Azure", "DevOps", "Kubernetes"},
			Duration: "5-10 months", ROI: 92, DemandTrend: "Extremely High", JobOpenings: "200,000+",
			Description: "Cloud migration is mandatory for businesses. Shortage of certified professionals.",
			TopRoles:    domain.StringList{"Cloud Architect", "DevOps Engineer", "Solutions Architect"},
			Certifications: domain.StringList{"AWS Solutions Architect", "Azure Administrator", "GCP Professional"},
		},
		{
			Name: "UX/UI Design", Category: "Design",
			AvgSalary: "$70,000 - $120,000", Competition: "Medium-High", CompetitionScore: 65,
			Growth: "+22%", Skills: domain.StringList{"Figma", "User Research", "Prototyping", "Design Thinking"},
			Duration: "3-6 months", ROI: 78, DemandTrend: "Steady Growth", JobOpenings: "85,000+",
			Description: "Every digital product needs UX. Portfolio matters more than degree.",
			TopRoles:    domain.StringList{"UX Designer", "Product Designer", "UX Researcher"},
			Certifications: domain.StringList{"Google UX Design", "Nielsen Norman Group", "Interaction Design Foundation"},
		},
		{
			Name: "Blockchain Development", Category: "Technology",
			AvgSalary: "$100,000 - $180,000", Competition: "Low", CompetitionScore: 30,
			Growth: "+40%", Skills: domain.StringList{"Solidity", "Web3", "Smart Contracts", "Cryptography"},
			Duration: "6-12 months", ROI: 88, DemandTrend: "Explosive Growth", JobOpenings: "45,000+",
			Description: "Very few qualified developers. Web3 and DeFi expansion creating massive demand.",
			TopRoles:    domain.StringList{"Blockchain Developer", "Smart Contract Engineer", "Web3 Developer"},
			Certifications: domain.StringList{"Certified Blockchain Developer", "Ethereum Developer", "Hyperledger"},
		},
		{
			Name: "Digital Marketing & SEO", Category: "Marketing",
			AvgSalary: "$55,000 - $95,000", Competition: "High", CompetitionScore: 75,
			Growth: "+18%", Skills: domain.StringList{"SEO", "Google Ads", "Analytics", "Content Strategy"},
			Duration: "2-4 months", ROI: 65, DemandTrend: "Moderate Growth", JobOpenings: "150,000+",
			Description: "Lower barrier to entry but saturated market. Specialization is key.",
			TopRoles:    domain.StringList{"SEO Specialist", "Digital Marketer", "Growth Hacker"},
			Certifications: domain.StringList{"Google Ads", "HubSpot", "Meta Blueprint"},
		},
		{
			Name: "Healthcare Data Analytics", Category: "Healthcare",
			AvgSalary: "$85,000 - $130,000", Competition: "Low", CompetitionScore: 40,
			Growth: "+30%", Skills: domain.StringList{"Healthcare Systems", "Data Analysis", "HIPAA", "Clinical Informatics"},
			Duration: "6-9 months", ROI: 90, DemandTrend: "Growing Fast", JobOpenings: "60,000+",
			Description: "Healthcare digitization creating huge demand. Niche field with less competition.",
			TopRoles:    domain.StringList{"Healthcare Data Analyst", "Clinical Informaticist", "Health IT Specialist"},
			Certifications: domain.StringList{"CAHIMS", "Healthcare Analytics", "Epic Certification"},
		},
		{
			Name: "Renewable Energy Engineering", Category: "Engineering",
			AvgSalary: "$75,000 - $125,000", Competition: "Medium", CompetitionScore: 50,
			Growth: "+25%", Skills: domain.StringList{"Solar Systems", "Wind Energy", "Energy Modeling", "Sustainability"},
			Duration: "8-12 months", ROI: 82, DemandTrend: "Accelerating", JobOpenings: "55,000+",
			Description: "Green energy transition is urgent. Government incentives boosting sector.",
			TopRoles:    domain.StringList{"Solar Engineer", "Energy Analyst", "Sustainability Consultant"},
			Certifications: domain.StringList{"NABCEP", "LEED", "Energy Manager"},
		},
		{
			Name: "Product Management", Category: "Business",
			AvgSalary: "$95,000 - $150,000", Competition: "Medium-High", CompetitionScore: 68,
			Growth: "+20%", Skills: domain.StringList{"Product Strategy", "Agile", "User Stories", "Analytics"},
			Duration: "4-8 months", ROI: 75, DemandTrend: "Strong Demand", JobOpenings: "95,000+",
			Description: "Tech companies need PMs, but field is competitive. Experience valued highly.",
			TopRoles:    domain.StringList{"Product Manager", "Product Owner", "Technical PM"},
			Certifications: domain.StringList{"Certified Scrum Product Owner", "Pragmatic Marketing", "Product School"},
		},
		{
			Name: "Robotics & Automation", Category: "Engineering",
			AvgSalary: "$90,000 - $140,000", Competition: "Low-Medium", CompetitionScore: 42,
			Growth: "+24%", Skills: domain.StringList{"ROS", "Computer Vision", "Control Systems", "Python"},
			Duration: "8-14 months", ROI: 86, DemandTrend: "Rising Steadily", JobOpenings: "40,000+",
			Description: "Manufacturing automation and AI robotics creating new opportunities.",
			TopRoles:    domain.StringList{"Robotics Engineer", "Automation Specialist", "Controls Engineer"},
			Certifications: domain.StringList{"Certified Automation Professional", "ROS Developer", "PLC Programming"},
		},
	}
}
