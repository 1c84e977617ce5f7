package database

import (
	"context"
	"fmt"

	"github.com/pureaura/clinic-backend/models"
	"github.com/pureaura/clinic-backend/store"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Seed upserts the clinic's reference data. Running it twice leaves the
// catalog tables in the same state as running it once.
func Seed(db *gorm.DB) error {
	ctx := context.Background()
	catalog := store.NewCatalogStore(db)

	services := []models.Service{
		{
			ID:            "facial-signature",
			Name:          "Signature Facial Treatment",
			NameNL:        "Signature Gezichtsbehandeling",
			NameAR:        "علاج الوجه المميز",
			Description:   "Deep cleansing, hydrating, and rejuvenating facial treatment",
			DescriptionNL: "Diep reinigende, hydraterende en verjongende gezichtsbehandeling",
			DescriptionAR: "علاج وجه مطهر ومرطب ومجدد للشباب بعمق",
			Price:         89.00,
			Duration:      60,
			Category:      "facial",
			ImageURL:      "/services/facial.jpg",
		},
		{
			ID:            "skincare-advanced",
			Name:          "Advanced Skincare",
			NameNL:        "Geavanceerde Huidverzorging",
			NameAR:        "العناية المتقدمة بالبشرة",
			Description:   "Professional skincare solutions for all skin types",
			DescriptionNL: "Professionele huidverzorgingsoplossingen voor alle huidtypes",
			DescriptionAR: "حلول العناية بالبشرة المهنية لجميع أنواع البشرة",
			Price:         120.00,
			Duration:      75,
			Category:      "skincare",
			ImageURL:      "/services/skincare.jpg",
		},
		{
			ID:            "antiaging",
			Name:          "Anti-Aging Treatment",
			NameNL:        "Anti-Aging Behandeling",
			NameAR:        "علاج مكافحة الشيخوخة",
			Description:   "Revolutionary treatments to reduce signs of aging",
			DescriptionNL: "Revolutionaire behandelingen om tekenen van veroudering te verminderen",
			DescriptionAR: "علاجات ثورية لتقليل علامات الشيخوخة",
			Price:         150.00,
			Duration:      90,
			Category:      "antiaging",
			ImageURL:      "/services/antiaging.jpg",
		},
		{
			ID:            "acne-treatment",
			Name:          "Acne Treatment",
			NameNL:        "Acne Behandeling",
			NameAR:        "علاج حب الشباب",
			Description:   "Effective solutions for acne-prone skin",
			DescriptionNL: "Effectieve oplossingen voor acne-gevoelige huid",
			DescriptionAR: "حلول فعالة للبشرة المعرضة لحب الشباب",
			Price:         95.00,
			Duration:      60,
			Category:      "acne",
			ImageURL:      "/services/acne.jpg",
		},
		{
			ID:            "hydrafacial",
			Name:          "HydraFacial",
			NameNL:        "HydraFacial",
			NameAR:        "هيدرا فيشال",
			Description:   "Deep cleansing and hydrating facial treatment",
			DescriptionNL: "Diep reinigende en hydraterende gezichtsbehandeling",
			DescriptionAR: "علاج وجه مطهر ومرطب بعمق",
			Price:         135.00,
			Duration:      45,
			Category:      "hydrafacial",
			ImageURL:      "/services/hydrafacial.jpg",
		},
		{
			ID:            "chemical-peel",
			Name:          "Chemical Peel",
			NameNL:        "Chemische Peeling",
			NameAR:        "التقشير الكيميائي",
			Description:   "Professional chemical peels for skin renewal",
			DescriptionNL: "Professionele chemische peelings voor huidvernieuwing",
			DescriptionAR: "تقشير كيميائي مهني لتجديد البشرة",
			Price:         110.00,
			Duration:      45,
			Category:      "chemical",
			ImageURL:      "/services/chemical.jpg",
		},
	}
	if err := catalog.UpsertServices(ctx, services); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	staff := []models.Staff{
		{
			ID:          "sarah-beauty",
			Name:        "Sarah van der Berg",
			Email:       "sarah@pureaura.clinic",
			Phone:       "+31 6 1234 5001",
			Role:        "Senior Beautician",
			Bio:         "Sarah has over 10 years of experience in advanced skincare treatments and is certified in multiple beauty therapy techniques.",
			ImageURL:    "/staff/sarah.jpg",
			Languages:   `["nl","en"]`,
			Specialties: `["Anti-Aging","HydraFacial","Chemical Peels"]`,
		},
		{
			ID:          "amira-specialist",
			Name:        "Amira Hassan",
			Email:       "amira@pureaura.clinic",
			Phone:       "+31 6 1234 5002",
			Role:        "Beauty Specialist",
			Bio:         "Amira specializes in facial treatments and acne solutions. She speaks Dutch, English, and Arabic fluently.",
			ImageURL:    "/staff/amira.jpg",
			Languages:   `["nl","en","ar"]`,
			Specialties: `["Facial Treatments","Acne Treatment","Skincare Consultation"]`,
		},
		{
			ID:          "emma-therapist",
			Name:        "Emma Johnson",
			Email:       "emma@pureaura.clinic",
			Phone:       "+31 6 1234 5003",
			Role:        "Beauty Therapist",
			Bio:         "Emma is passionate about personalized skincare and helps clients achieve their beauty goals through customized treatment plans.",
			ImageURL:    "/staff/emma.jpg",
			Languages:   `["nl","en"]`,
			Specialties: `["Signature Facials","Skincare Analysis","Beauty Consultation"]`,
		},
	}
	if err := catalog.UpsertStaff(ctx, staff); err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}

	gallery := []models.GalleryItem{
		{
			ID:            "clinic-interior",
			Title:         "Pure Aura Clinic Interior",
			TitleNL:       "Pure Aura Clinic Interieur",
			TitleAR:       "داخل عيادة بيور أورا",
			Description:   "Our luxurious and modern clinic space",
			DescriptionNL: "Onze luxueuze en moderne kliniekruimte",
			DescriptionAR: "مساحة عيادتنا الفاخرة والحديثة",
			ImageURL:      "/gallery/clinic-interior.jpg",
			Category:      "clinic",
			DisplayOrder:  1,
		},
		{
			ID:            "treatment-room",
			Title:         "Treatment Room",
			TitleNL:       "Behandelkamer",
			TitleAR:       "غرفة العلاج",
			Description:   "Professional treatment room with state-of-the-art equipment",
			DescriptionNL: "Professionele behandelkamer met state-of-the-art apparatuur",
			DescriptionAR: "غرفة علاج مهنية مع أحدث المعدات",
			ImageURL:      "/gallery/treatment-room.jpg",
			Category:      "facilities",
			DisplayOrder:  2,
		},
		{
			ID:            "products-display",
			Title:         "Premium Skincare Products",
			TitleNL:       "Premium Huidverzorgingsproducten",
			TitleAR:       "منتجات العناية بالبشرة المتميزة",
			Description:   "High-quality products used in our treatments",
			DescriptionNL: "Hoogwaardige producten gebruikt in onze behandelingen",
			DescriptionAR: "منتجات عالية الجودة تستخدم في علاجاتنا",
			ImageURL:      "/gallery/products.jpg",
			Category:      "products",
			DisplayOrder:  3,
		},
	}
	if err := catalog.UpsertGallery(ctx, gallery); err != nil {
		return fmt.Errorf("seed gallery: %w", err)
	}

	reviews := []models.Review{
		{
			ID:         "review-1",
			Name:       "Sarah van der Berg",
			Email:      "sarah@example.com",
			Rating:     5,
			Title:      "Fantastische ervaring!",
			Content:    "De HydraFacial behandeling was geweldig. Mijn huid straalt weer en het personeel was zeer professioneel. Zeker een aanrader!",
			ServiceID:  strPtr("hydrafacial"),
			IsApproved: true,
			IsFeature:  true,
			Language:   "nl",
		},
		{
			ID:         "review-2",
			Name:       "Ahmed Al-Rashid",
			Email:      "ahmed@example.com",
			Rating:     5,
			Title:      "Professional and welcoming",
			Content:    "The staff speaks Arabic which made me feel very comfortable. The anti-aging treatment exceeded my expectations. Will definitely come back!",
			ServiceID:  strPtr("antiaging"),
			IsApproved: true,
			IsFeature:  true,
			Language:   "en",
		},
		{
			ID:         "review-3",
			Name:       "Emma Johnson",
			Email:      "emma@example.com",
			Rating:     4,
			Title:      "Great results",
			Content:    "Very happy with my chemical peel treatment. The results were visible immediately and the aftercare instructions were clear.",
			ServiceID:  strPtr("chemical-peel"),
			IsApproved: true,
			IsFeature:  false,
			Language:   "en",
		},
		{
			ID:         "review-4",
			Name:       "Lisa de Wit",
			Email:      "lisa@example.com",
			Rating:     5,
			Title:      "Uitstekende service",
			Content:    "Pure Aura Clinic heeft mijn verwachtingen overtroffen. De gezichtsbehandeling was ontspannend en effectief. Het team is zeer kundig.",
			ServiceID:  strPtr("facial-signature"),
			IsApproved: true,
			IsFeature:  true,
			Language:   "nl",
		},
		{
			ID:         "review-5",
			Name:       "Michael Chen",
			Email:      "michael@example.com",
			Rating:     4,
			Title:      "Clean and professional",
			Content:    "First time visiting a beauty clinic and I was impressed. Clean facility, professional staff, and great results from my skincare treatment.",
			ServiceID:  strPtr("skincare-advanced"),
			IsApproved: true,
			IsFeature:  false,
			Language:   "en",
		},
		{
			ID:         "review-6",
			Name:       "Fatima Hassan",
			Email:      "fatima@example.com",
			Rating:     5,
			Title:      "تجربة رائعة",
			Content:    "خدمة ممتازة وطاقم متخصص. العلاج كان فعالاً جداً وأنصح الجميع بزيارة هذه العيادة.",
			ServiceID:  strPtr("facial-signature"),
			IsApproved: true,
			IsFeature:  true,
			Language:   "ar",
		},
	}
	if err := catalog.UpsertReviews(ctx, reviews); err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}

	settings := []models.Setting{
		{Key: "clinic_name", Value: "Pure Aura Clinic"},
		{Key: "clinic_address", Value: "Schoutstraat 29, 1315EV Almere Stad, Netherlands"},
		{Key: "clinic_phone", Value: "+31 6 84664822"},
		{Key: "clinic_email", Value: "info@pureaura.clinic"},
		{Key: "opening_hours", Value: "Mon-Fri: 9:00-18:00, Sat: 10:00-16:00, Sun: Closed"},
		{Key: "booking_advance_days", Value: "90"},
		{Key: "booking_cancellation_hours", Value: "24"},
		{Key: "default_language", Value: "nl"},
		{Key: "supported_languages", Value: "nl,en,ar"},
		{Key: "currency", Value: "EUR"},
		{Key: "currency_symbol", Value: "€"},
		{Key: "timezone", Value: "Europe/Amsterdam"},
	}
	if err := catalog.UpsertSettings(ctx, settings); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	fmt.Println("✅ Database seeded successfully")
	return nil
}
