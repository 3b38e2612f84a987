package maskconfig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/maskconfig"
)

const openapiDoc = `
openapi: 3.0.3
info:
  title: Orders
  version: 1.0.0
paths:
  /orders:
    post:
      operationId: createOrder
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                card:
                  type: string
                  x-inputmask: "[0000] [0000] [0000] [0000]"
      responses:
        "201":
          description: created
components:
  schemas:
    Contact:
      type: object
      properties:
        name:
          type: string
        phone:
          type: string
          description: Mobile <i>number</i>
          x-inputmask: "+7 ([000]) [000]-[00]-[00]"
          x-inputmask-affine: ["+7 ([000]) [000]-[00]-[00]#[000]"]
          x-inputmask-affinity: prefix
        address:
          type: object
          properties:
            postcode:
              type: string
              x-inputmask: "[000000]"
`

func TestFromOpenAPI(t *testing.T) {
	set, err := maskconfig.FromOpenAPI(context.Background(), []byte(openapiDoc))
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}

	want := []string{"Contact.address.postcode", "Contact.phone", "createOrder.card"}
	if diff := cmp.Diff(want, set.List()); diff != "" {
		t.Fatalf("mask names mismatch (-want +got):\n%s", diff)
	}

	phone, err := set.Get("Contact.phone")
	if err != nil {
		t.Fatalf("get phone: %v", err)
	}
	wantPhone := maskconfig.Definition{
		Name:     "Contact.phone",
		Source:   "openapi",
		Format:   "+7 ([000]) [000]-[00]-[00]",
		Affine:   []string{"+7 ([000]) [000]-[00]-[00]#[000]"},
		Affinity: mask.Prefix,
		Hint:     "Mobile number",
	}
	if diff := cmp.Diff(wantPhone, phone); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := maskconfig.FromOpenAPI(ctx, nil); err == nil {
		t.Fatalf("expected error for empty document")
	}

	bad := `
openapi: 3.0.3
info: {title: Bad, version: "1"}
paths: {}
components:
  schemas:
    Broken:
      type: object
      properties:
        code:
          type: string
          x-inputmask: "[00"
`
	if _, err := maskconfig.FromOpenAPI(ctx, []byte(bad)); !errors.Is(err, mask.ErrMalformedPattern) {
		t.Fatalf("expected malformed pattern, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := maskconfig.FromOpenAPI(cancelled, []byte(openapiDoc)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
