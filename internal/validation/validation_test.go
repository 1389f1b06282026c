package validation

import "testing"

func TestValidate_InquiryAcceptsWellFormedPayload(t *testing.T) {
	body := []byte(`{
		"name": "Amar Hodžić",
		"email": "amar@example.com",
		"phone": "+387 61 123 456",
		"message": "Interesuje me ovo vozilo, da li je još dostupno?",
		"vehicle_id": "01J0000000000000000000000"
	}`)

	if err := Validate(SchemaInquiry, body); err != nil {
		t.Errorf("expected payload to validate, got %v", err)
	}
}

func TestValidate_InquiryRejectsMissingFields(t *testing.T) {
	body := []byte(`{"name": "Amar"}`)
	if err := Validate(SchemaInquiry, body); err == nil {
		t.Error("expected validation error for missing email and message")
	}
}

func TestValidate_InquiryRejectsUnknownFields(t *testing.T) {
	body := []byte(`{
		"name": "Amar",
		"email": "amar@example.com",
		"message": "Pozdrav, imam pitanje.",
		"admin": true
	}`)
	if err := Validate(SchemaInquiry, body); err == nil {
		t.Error("expected validation error for unknown field")
	}
}

func TestValidate_VehicleEnforcesEnumsAndNonEmptyLists(t *testing.T) {
	valid := []byte(`{
		"brand": "BMW",
		"model": "320d",
		"year": 2020,
		"price": 45000,
		"mileage": 60000,
		"fuel": "diesel",
		"transmission": "automatic",
		"power_kw": 140,
		"color": "Crna",
		"images": ["https://cdn.example.com/1.jpg"],
		"features": ["Navigacija"]
	}`)
	if err := Validate(SchemaVehicle, valid); err != nil {
		t.Errorf("expected payload to validate, got %v", err)
	}

	badFuel := []byte(`{
		"brand": "BMW", "model": "320d", "year": 2020, "price": 45000,
		"fuel": "steam", "transmission": "automatic", "power_kw": 140,
		"color": "Crna", "images": ["a.jpg"], "features": ["Navigacija"]
	}`)
	if err := Validate(SchemaVehicle, badFuel); err == nil {
		t.Error("expected validation error for unknown fuel type")
	}

	emptyImages := []byte(`{
		"brand": "BMW", "model": "320d", "year": 2020, "price": 45000,
		"fuel": "diesel", "transmission": "automatic", "power_kw": 140,
		"color": "Crna", "images": [], "features": ["Navigacija"]
	}`)
	if err := Validate(SchemaVehicle, emptyImages); err == nil {
		t.Error("expected validation error for empty image list")
	}
}

func TestValidate_UnknownSchemaName(t *testing.T) {
	if err := Validate("bogus", []byte(`{}`)); err == nil {
		t.Error("expected error for unknown schema name")
	}
}
