package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"servicescale/internal/domain/entities"
	mock_interfaces "servicescale/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const customersCSV = "\xef\xbb\xbfCustomer Name,E-mail,Street,Town,ST,Zip\n" +
	"Jane Doe,jane@example.com,12 Elm St,Springfield,IL,62701\n" +
	",,,,,\n" +
	"John Roe,john@example.com,9 Oak Ave,Shelbyville,IL,62565\n"

var customersMapping = ColumnMapping{
	FieldName:       "Customer Name",
	FieldEmail:      "E-mail",
	FieldAddress1:   "Street",
	FieldCity:       "Town",
	FieldState:      "ST",
	FieldPostalCode: "Zip",
}

func TestImportUseCase_CustomersRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	archive := mock_interfaces.NewMockIUploadArchive(ctrl)

	s := newTestStack()
	uc := NewImportUseCase(s.customers, s.pricebook, s.uploads, archive, &seqBatchIDs{}, nil)
	ctx := ownerCtx()

	preview, err := uc.Sniff(ctx, entities.UploadKindCustomers, "customers.csv", []byte(customersCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer Name", "E-mail", "Street", "Town", "ST", "Zip"}, preview.Headers)
	assert.Equal(t, "Jane Doe", preview.Preview["Customer Name"])
	assert.Equal(t, []string{FieldName}, preview.RequiredFields)
	assert.Equal(t, ImportFields(entities.UploadKindCustomers), preview.Fields)

	archive.EXPECT().Put(gomock.Any(), testOwner, "b-1", "customers.csv", []byte(customersCSV)).
		Return("uploads/owner-1/b-1/customers.csv", nil)

	res, err := uc.Confirm(ctx, preview.SessionID, customersMapping)
	require.NoError(t, err)
	assert.Equal(t, "b-1", res.BatchID)
	assert.Equal(t, 2, res.RowCount)
	require.NotNil(t, res.Upload)
	assert.Equal(t, "uploads/owner-1/b-1/customers.csv", res.Upload.ArchiveKey)
	assert.Equal(t, entities.UploadKindCustomers, res.Upload.Kind)

	list, err := s.customers.List(ctx, CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	byName := map[string]entities.Customer{}
	for _, v := range list {
		assert.Equal(t, "b-1", v.BatchID)
		byName[v.Name] = v.Customer
	}
	assert.Equal(t, "12 Elm St, Springfield, IL 62701", byName["Jane Doe"].FullAddress)
	assert.Equal(t, "jane@example.com", byName["Jane Doe"].Email)
	assert.Equal(t, "9 Oak Ave, Shelbyville, IL 62565", byName["John Roe"].FullAddress)

	uploads, err := s.uploads.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Equal(t, 2, uploads[0].RowCount)

	// the session is gone once confirmed
	_, err = uc.Confirm(ctx, preview.SessionID, customersMapping)
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestImportUseCase_Pricebook(t *testing.T) {
	s := newTestStack()
	uc := NewImportUseCase(s.customers, s.pricebook, s.uploads, nil, &seqBatchIDs{}, nil)
	ctx := ownerCtx()

	content := "Item,Cost,Notes\nBase HVAC System,\"$6,200.00\",Installed\nAdditional Zone,abc,\n"
	preview, err := uc.Sniff(ctx, entities.UploadKindPricebook, "prices.csv", []byte(content))
	require.NoError(t, err)

	res, err := uc.Confirm(ctx, preview.SessionID, ColumnMapping{FieldName: "Item", FieldPrice: "Cost", FieldDescription: "Notes"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowCount)

	price, ok, err := s.pricebook.PriceByName(ctx, "base hvac system")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(6200)), price.String())

	price, ok, err = s.pricebook.PriceByName(ctx, "Additional Zone")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, price.IsZero())
}

func TestImportUseCase_ParseErrors(t *testing.T) {
	uc := NewImportUseCase(nil, nil, nil, nil, &seqBatchIDs{}, nil)
	ctx := ownerCtx()

	t.Run("empty file", func(t *testing.T) {
		_, err := uc.Sniff(ctx, entities.UploadKindCustomers, "empty.csv", nil)
		if !IsParse(err) {
			t.Fatalf("expected parse error, got %v", err)
		}
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := uc.Sniff(ctx, entities.UploadKindCustomers, "bad.csv", []byte("name,email\nJane\n"))
		var pe *ImportParseError
		if !errors.As(err, &pe) {
			t.Fatalf("expected parse error, got %v", err)
		}
		assert.Equal(t, 2, pe.Line)
	})

	t.Run("bare quote", func(t *testing.T) {
		_, err := uc.Sniff(ctx, entities.UploadKindCustomers, "bad.csv", []byte("name,email\nJa\"ne,x\n"))
		if !IsParse(err) {
			t.Fatalf("expected parse error, got %v", err)
		}
	})

	t.Run("malformed row past the preview", func(t *testing.T) {
		s := newTestStack()
		uc := NewImportUseCase(s.customers, s.pricebook, nil, nil, &seqBatchIDs{}, nil)
		content := "name\nJane\nJohn,extra\n"

		preview, err := uc.Sniff(ctx, entities.UploadKindCustomers, "late.csv", []byte(content))
		require.NoError(t, err)

		_, err = uc.Confirm(ctx, preview.SessionID, ColumnMapping{FieldName: "name"})
		if !IsParse(err) {
			t.Fatalf("expected parse error, got %v", err)
		}
		items, err := s.customers.FetchAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := uc.Sniff(ctx, entities.UploadKind("invoices"), "x.csv", []byte("name\n"))
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestImportUseCase_MappingValidation(t *testing.T) {
	s := newTestStack()
	uc := NewImportUseCase(s.customers, s.pricebook, nil, nil, &seqBatchIDs{}, nil)
	ctx := ownerCtx()

	preview, err := uc.Sniff(ctx, entities.UploadKindCustomers, "customers.csv", []byte(customersCSV))
	require.NoError(t, err)

	cases := map[string]ColumnMapping{
		"name not mapped": {FieldEmail: "E-mail"},
		"unknown header":  {FieldName: "Full Name"},
		"unknown field":   {FieldName: "Customer Name", FieldPrice: "Zip"},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Confirm(ctx, preview.SessionID, m)
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	// the session survives a rejected mapping
	res, err := uc.Confirm(ctx, preview.SessionID, ColumnMapping{FieldName: "Customer Name"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.RowCount)
	assert.Nil(t, res.Upload)
}

func TestImportUseCase_SessionOwnership(t *testing.T) {
	s := newTestStack()
	uc := NewImportUseCase(s.customers, s.pricebook, nil, nil, &seqBatchIDs{}, nil)

	preview, err := uc.Sniff(ownerCtx(), entities.UploadKindCustomers, "customers.csv", []byte(customersCSV))
	require.NoError(t, err)

	if err := uc.Cancel(authCtx("owner-2"), preview.SessionID); !IsNotFound(err) {
		t.Fatalf("expected not found for another owner, got %v", err)
	}
	require.NoError(t, uc.Cancel(ownerCtx(), preview.SessionID))
	if _, err := uc.Confirm(ownerCtx(), preview.SessionID, customersMapping); !IsNotFound(err) {
		t.Fatalf("expected not found after cancel, got %v", err)
	}
}

// gatedCustomers holds AddMany open until release is closed.
type gatedCustomers struct {
	ICustomerUseCase
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (g *gatedCustomers) AddMany(_ context.Context, customers []entities.Customer, _ string) ([]entities.Customer, error) {
	if g.calls.Add(1) == 1 {
		close(g.entered)
	}
	<-g.release
	return customers, nil
}

func TestImportUseCase_OverlappingConfirmsCommitOnce(t *testing.T) {
	s := newTestStack()
	gate := &gatedCustomers{ICustomerUseCase: s.customers, entered: make(chan struct{}), release: make(chan struct{})}
	uc := NewImportUseCase(gate, s.pricebook, nil, nil, &seqBatchIDs{}, nil)
	ctx := ownerCtx()

	preview, err := uc.Sniff(ctx, entities.UploadKindCustomers, "customers.csv", []byte(customersCSV))
	require.NoError(t, err)

	type outcome struct {
		res ImportResult
		err error
	}
	first := make(chan outcome, 1)
	go func() {
		res, err := uc.Confirm(ctx, preview.SessionID, customersMapping)
		first <- outcome{res, err}
	}()
	<-gate.entered

	if _, err := uc.Confirm(ctx, preview.SessionID, customersMapping); !IsNotFound(err) {
		t.Fatalf("expected not found for a session already being confirmed, got %v", err)
	}

	close(gate.release)
	got := <-first
	require.NoError(t, got.err)
	assert.Equal(t, 2, got.res.RowCount)
	assert.Equal(t, int32(1), gate.calls.Load())
}

func TestImportUseCase_ArchiveFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	archive := mock_interfaces.NewMockIUploadArchive(ctrl)

	s := newTestStack()
	uc := NewImportUseCase(s.customers, s.pricebook, s.uploads, archive, &seqBatchIDs{}, nil)
	ctx := ownerCtx()

	preview, err := uc.Sniff(ctx, entities.UploadKindCustomers, "customers.csv", []byte(customersCSV))
	require.NoError(t, err)

	archive.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))

	res, err := uc.Confirm(ctx, preview.SessionID, customersMapping)
	require.NoError(t, err)
	require.NotNil(t, res.Upload)
	assert.Equal(t, "", res.Upload.ArchiveKey)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]string{
		"$1,250.00": "1250",
		" 99.5 ":    "99.5",
		"€ 10":      "10",
		"-5":        "0",
		"call us":   "0",
		"":          "0",
	}
	for in, want := range cases {
		got := ParsePrice(in)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("ParsePrice(%q) = %s, want %s", in, got, want)
		}
	}
}
