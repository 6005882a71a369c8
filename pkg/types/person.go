package types

// Person is a client or car owner. Fields hold the canonical validated
// values; names are stored capitalized, everything else as entered.
type Person struct {
	ID        string
	FirstName string
	LastName  string
	Age       string
	Email     string
	Phone     string
}

// PersonInput carries the raw field values collected for a Person, before
// validation.
type PersonInput struct {
	ID        string
	FirstName string
	LastName  string
	Age       string
	Email     string
	Phone     string
}

// NewPerson validates every field and returns the constructed Person. The
// first failing field aborts construction with ErrValidation.
func NewPerson(in PersonInput) (*Person, error) {
	id, err := ValidateID("ID number", in.ID)
	if err != nil {
		return nil, err
	}
	first, err := ValidateName("first name", in.FirstName)
	if err != nil {
		return nil, err
	}
	last, err := ValidateName("last name", in.LastName)
	if err != nil {
		return nil, err
	}
	age, err := ValidateAge(in.Age)
	if err != nil {
		return nil, err
	}
	email, err := ValidateEmail(in.Email)
	if err != nil {
		return nil, err
	}
	phone, err := ValidatePhone(in.Phone)
	if err != nil {
		return nil, err
	}
	return &Person{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Age:       age,
		Email:     email,
		Phone:     phone,
	}, nil
}

// PersonFromRow reconstructs a Person from its stored row, re-running full
// validation. A row stored under since-tightened rules can therefore fail
// to reload.
func PersonFromRow(row Row) (*Person, error) {
	if len(row) != len(PersonFields) {
		return nil, rowLengthError(PersonCollection, len(PersonFields), len(row))
	}
	return NewPerson(PersonInput{
		ID:        row[0],
		FirstName: row[1],
		LastName:  row[2],
		Age:       row[3],
		Email:     row[4],
		Phone:     row[5],
	})
}

// Row returns the ordered field values per PersonFields.
func (p *Person) Row() Row {
	return Row{p.ID, p.FirstName, p.LastName, p.Age, p.Email, p.Phone}
}

// Collection returns the backing collection name.
func (p *Person) Collection() string { return PersonCollection }

// Key returns the primary key.
func (p *Person) Key() string { return p.ID }
