package store

import (
	"strings"
	"testing"
)

func validStore() *Store {
	s := &Store{
		Name:  "Test Shop",
		Theme: ThemeSettings{ID: "modern"},
		Products: []Product{
			{ID: "p1", Name: "Mug", Price: 10},
		},
	}
	s.Normalize()
	return s
}

func TestValidateOK(t *testing.T) {
	r := Validate(validStore())
	if !r.OK() {
		t.Errorf("valid store should pass, got errors: %v", r.Errors)
	}
}

func TestValidateMissingName(t *testing.T) {
	s := validStore()
	s.Name = "   "
	r := Validate(s)
	if r.OK() {
		t.Fatal("empty store name should be a blocking error")
	}
	if r.Errors[0].Field != "name" {
		t.Errorf("error field = %q, want name", r.Errors[0].Field)
	}
}

func TestValidateProducts(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Store)
		wantErr  string
		wantWarn string
	}{
		{
			name:    "non-positive price",
			mutate:  func(s *Store) { s.Products[0].Price = 0 },
			wantErr: "price must be positive",
		},
		{
			name: "duplicate id",
			mutate: func(s *Store) {
				s.Products = append(s.Products, Product{ID: "p1", Name: "Copy", Price: 5})
			},
			wantErr: "duplicate product id",
		},
		{
			name:    "discount out of range",
			mutate:  func(s *Store) { s.Products[0].IsOnSale = true; s.Products[0].DiscountPercentage = 150 },
			wantErr: "discount must be between 0 and 100",
		},
		{
			name:     "original price not exceeding price warns only",
			mutate:   func(s *Store) { s.Products[0].OriginalPrice = 8 },
			wantWarn: "original price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStore()
			tt.mutate(s)
			r := Validate(s)
			if tt.wantErr != "" {
				if r.OK() {
					t.Fatalf("expected blocking error containing %q", tt.wantErr)
				}
				if !containsIssue(r.Errors, tt.wantErr) {
					t.Errorf("errors %v missing %q", r.Errors, tt.wantErr)
				}
			}
			if tt.wantWarn != "" {
				if !r.OK() {
					t.Fatalf("warning case should not block: %v", r.Errors)
				}
				if !containsIssue(r.Warnings, tt.wantWarn) {
					t.Errorf("warnings %v missing %q", r.Warnings, tt.wantWarn)
				}
			}
		})
	}
}

func TestValidatePages(t *testing.T) {
	s := validStore()
	s.Pages = []CustomPage{
		{ID: "a", Title: "Shop", Slug: "shop", IsDefault: true, ShowAllProducts: true, Published: true, PageType: PageTypeProducts},
		{ID: "b", Title: "Also Shop", Slug: "shop", IsDefault: true, ShowAllProducts: true, Published: true, PageType: PageTypeProducts},
	}
	r := Validate(s)
	if !containsIssue(r.Errors, "duplicate slug") {
		t.Errorf("expected duplicate slug error, got %v", r.Errors)
	}
	if !containsIssue(r.Errors, "more than one page") {
		t.Errorf("expected single-default error, got %v", r.Errors)
	}
}

func TestValidateWhatsApp(t *testing.T) {
	s := validStore()
	s.WhatsApp = WhatsAppSettings{Enabled: true}
	r := Validate(s)
	if !containsIssue(r.Errors, "phone number is required") {
		t.Errorf("expected phone error, got %v", r.Errors)
	}

	s.WhatsApp.Phone = "not a phone!"
	r = Validate(s)
	if !containsIssue(r.Errors, "invalid phone") {
		t.Errorf("expected invalid phone error, got %v", r.Errors)
	}

	s.WhatsApp.Phone = "+212 600 123456"
	r = Validate(s)
	if !r.OK() {
		t.Errorf("valid phone should pass, got %v", r.Errors)
	}
}

func TestValidColor(t *testing.T) {
	valid := []string{"#fff", "#2563eb", "rgb(1, 2, 3)", "rgba(1,2,3,0.5)", "hsl(210, 40%, 50%)", "hsla(210,40%,50%,0.2)"}
	for _, c := range valid {
		if !ValidColor(c) {
			t.Errorf("ValidColor(%q) = false, want true", c)
		}
	}
	invalid := []string{"", "blue", "#12", "#12345", "rgb(1,2)", "hsl(210,40,50)"}
	for _, c := range invalid {
		if ValidColor(c) {
			t.Errorf("ValidColor(%q) = true, want false", c)
		}
	}
}

func TestValidSlug(t *testing.T) {
	if !ValidSlug("about-us") || !ValidSlug("faq2") {
		t.Error("expected valid slugs to pass")
	}
	for _, s := range []string{"", "About", "a--b", "-lead", "trail-", "with space"} {
		if ValidSlug(s) {
			t.Errorf("ValidSlug(%q) = true, want false", s)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"About Us", "about-us"},
		{"  FAQ & Returns!  ", "faq-returns"},
		{"Déjà Vu", "d-j-vu"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func containsIssue(issues []Issue, substr string) bool {
	for _, i := range issues {
		if strings.Contains(i.Message, substr) {
			return true
		}
	}
	return false
}
