package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testToken = "token-ok"

type fakeAuthUC struct{}

func (f *fakeAuthUC) Login(_ context.Context, req *usecase.LoginReq) (*usecase.LoginRes, error) {
	if req.Username == "" || req.Password == "" {
		verr := &e.ValidationError{}
		if req.Username == "" {
			verr.Add("username", "campo obrigatório")
		}
		if req.Password == "" {
			verr.Add("password", "campo obrigatório")
		}
		return nil, verr
	}
	if req.Username != "admin" || req.Password != "123" {
		return nil, e.ErrInvalidCredentials
	}
	return &usecase.LoginRes{Token: testToken, Subject: "admin", ExpiresIn: 1800}, nil
}

func (f *fakeAuthUC) VerifyToken(raw string) (string, error) {
	switch raw {
	case testToken:
		return "admin", nil
	case "token-expirado":
		return "", e.ErrExpiredToken
	default:
		return "", e.ErrInvalidToken
	}
}

type fakeProductUC struct {
	products map[string]usecase.ProductInfo
	calls    int
}

func newFakeProductUC(products ...usecase.ProductInfo) *fakeProductUC {
	f := &fakeProductUC{products: make(map[string]usecase.ProductInfo)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductUC) ListProducts(_ context.Context) ([]usecase.ProductInfo, error) {
	f.calls++
	out := make([]usecase.ProductInfo, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductUC) GetProduct(_ context.Context, id primitive.ObjectID) (*usecase.ProductInfo, error) {
	f.calls++
	p, ok := f.products[id.Hex()]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductUC) CreateProduct(_ context.Context, req *usecase.CreateProductReq) (string, error) {
	f.calls++
	if req.Name == "" {
		verr := &e.ValidationError{}
		verr.Add("name", "campo obrigatório")
		return "", verr
	}
	id := primitive.NewObjectID().Hex()
	price := 0.0
	if req.Price != nil {
		price = req.Price.InexactFloat64()
	}
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	f.products[id] = usecase.ProductInfo{ID: id, Name: req.Name, Price: price, Quantity: quantity, Category: req.Category}
	return id, nil
}

func (f *fakeProductUC) UpdateProduct(_ context.Context, id primitive.ObjectID, req *usecase.UpdateProductReq) (*usecase.ProductInfo, error) {
	f.calls++
	p, ok := f.products[id.Hex()]
	if !ok {
		return nil, e.ErrNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = req.Price.InexactFloat64()
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	f.products[id.Hex()] = p
	return &p, nil
}

func (f *fakeProductUC) DeleteProduct(_ context.Context, id primitive.ObjectID) error {
	f.calls++
	if _, ok := f.products[id.Hex()]; !ok {
		return e.ErrNotFound
	}
	delete(f.products, id.Hex())
	return nil
}

type fakeSaleUC struct {
	res   *usecase.IngestSalesRes
	err   error
	calls int
}

func (f *fakeSaleUC) IngestSales(_ context.Context, _ *usecase.IngestSalesReq) (*usecase.IngestSalesRes, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

type fakeCategoryUC struct {
	categories []usecase.CategoryInfo
}

func (f *fakeCategoryUC) ListCategories(_ context.Context) ([]usecase.CategoryInfo, error) {
	return f.categories, nil
}

func (f *fakeCategoryUC) CreateCategory(_ context.Context, req *usecase.CreateCategoryReq) (string, error) {
	id := primitive.NewObjectID().Hex()
	f.categories = append(f.categories, usecase.CategoryInfo{ID: id, Name: req.Name, Description: req.Description})
	return id, nil
}

func newTestRouter(prUC usecase.ProductUC, saleUC usecase.SaleUC, catUC usecase.CategoryUC) http.Handler {
	r := NewRouter(chi.NewRouter(), logger.NewNopLogger())
	r.Init(&fakeAuthUC{}, prUC, saleUC, catUC, &config.UploadCfg{MaxFileSize: 1 << 20})
	return r.router
}

func doJSON(t *testing.T, handler http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestWelcomeRoute(t *testing.T) {
	router := newTestRouter(newFakeProductUC(), &fakeSaleUC{}, &fakeCategoryUC{})

	rec := doJSON(t, router, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["message"]; got != "Bem vindo ao StyleSync!" {
		t.Errorf("message = %v", got)
	}
}

func TestLogin(t *testing.T) {
	router := newTestRouter(newFakeProductUC(), &fakeSaleUC{}, &fakeCategoryUC{})

	t.Run("sucesso", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/login", `{"username":"admin","password":"123"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
		}
		body := decodeBody(t, rec)
		if body["token"] != testToken {
			t.Errorf("token = %v", body["token"])
		}
		if body["message"] != "Login bem sucedido para o usuário admin" {
			t.Errorf("message = %v", body["message"])
		}
		if body["expires_in"] != float64(1800) {
			t.Errorf("expires_in = %v", body["expires_in"])
		}
	})

	t.Run("credenciais erradas", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/login", `{"username":"admin","password":"errada"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Credenciais inválidas" {
			t.Errorf("error = %v", got)
		}
	})

	t.Run("campos faltando", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/login", `{"username":"admin"}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("json malformado", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/login", `{"username":`, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Payload inválido" {
			t.Errorf("error = %v", got)
		}
	})
}

func TestAuthGate(t *testing.T) {
	hex := primitive.NewObjectID().Hex()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "criar produto", method: http.MethodPost, path: "/products"},
		{name: "atualizar produto", method: http.MethodPut, path: "/product/" + hex},
		{name: "remover produto", method: http.MethodDelete, path: "/product/" + hex},
		{name: "upload de vendas", method: http.MethodPost, path: "/sales/upload"},
		{name: "criar categoria", method: http.MethodPost, path: "/categories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prUC := newFakeProductUC()
			saleUC := &fakeSaleUC{}
			router := newTestRouter(prUC, saleUC, &fakeCategoryUC{})

			rec := doJSON(t, router, tt.method, tt.path, `{}`, "")
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if prUC.calls != 0 || saleUC.calls != 0 {
				t.Error("handler must not run without a token")
			}
		})
	}

	t.Run("token expirado", func(t *testing.T) {
		router := newTestRouter(newFakeProductUC(), &fakeSaleUC{}, &fakeCategoryUC{})

		rec := doJSON(t, router, http.MethodPost, "/products", `{}`, "token-expirado")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Token expirado" {
			t.Errorf("error = %v", got)
		}
	})

	t.Run("esquema errado", func(t *testing.T) {
		router := newTestRouter(newFakeProductUC(), &fakeSaleUC{}, &fakeCategoryUC{})

		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("leituras continuam públicas", func(t *testing.T) {
		router := newTestRouter(newFakeProductUC(), &fakeSaleUC{}, &fakeCategoryUC{})

		for _, path := range []string{"/products", "/categories"} {
			rec := doJSON(t, router, http.MethodGet, path, "", "")
			if rec.Code != http.StatusOK {
				t.Errorf("GET %s status = %d, want 200", path, rec.Code)
			}
		}
	})
}

func TestGetProduct(t *testing.T) {
	known := usecase.ProductInfo{ID: primitive.NewObjectID().Hex(), Name: "Camiseta", Price: 49.9, Quantity: 10}
	router := newTestRouter(newFakeProductUC(known), &fakeSaleUC{}, &fakeCategoryUC{})

	t.Run("encontrado", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/product/"+known.ID, "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["_id"] != known.ID || body["name"] != "Camiseta" {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("id malformado responde 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/product/nao-e-um-id", "", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Identificador inválido" {
			t.Errorf("error = %v", got)
		}
	})

	t.Run("inexistente responde 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/product/"+primitive.NewObjectID().Hex(), "", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Produto não encontrado" {
			t.Errorf("error = %v", got)
		}
	})
}

func TestCreateProduct(t *testing.T) {
	prUC := newFakeProductUC()
	router := newTestRouter(prUC, &fakeSaleUC{}, &fakeCategoryUC{})

	t.Run("criado", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/products",
			`{"name":"Camiseta","price":49.9,"quantity":10}`, testToken)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
		}
		id, _ := decodeBody(t, rec)["_id"].(string)
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			t.Errorf("_id = %q is not a valid identifier", id)
		}
	})

	t.Run("inválido responde 400 com os campos", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/products", `{"price":49.9,"quantity":10}`, testToken)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		issues, ok := decodeBody(t, rec)["error"].([]any)
		if !ok || len(issues) == 0 {
			t.Fatalf("error = %v, want a list of field issues", decodeBody(t, rec)["error"])
		}
	})

	t.Run("campo desconhecido responde 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/products", `{"name":"X","price":1,"quantity":1,"foo":1}`, testToken)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestUpdateProduct(t *testing.T) {
	known := usecase.ProductInfo{ID: primitive.NewObjectID().Hex(), Name: "Camiseta", Price: 49.9, Quantity: 10}
	router := newTestRouter(newFakeProductUC(known), &fakeSaleUC{}, &fakeCategoryUC{})

	rec := doJSON(t, router, http.MethodPut, "/product/"+known.ID, `{"price":39.9}`, testToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["price"] != 39.9 {
		t.Errorf("price = %v, want 39.9", body["price"])
	}
	if body["name"] != "Camiseta" || body["quantity"] != float64(10) {
		t.Errorf("untouched fields changed: %v", body)
	}
}

func TestDeleteProduct(t *testing.T) {
	known := usecase.ProductInfo{ID: primitive.NewObjectID().Hex(), Name: "Camiseta"}
	router := newTestRouter(newFakeProductUC(known), &fakeSaleUC{}, &fakeCategoryUC{})

	rec := doJSON(t, router, http.MethodDelete, "/product/"+known.ID, "", testToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/product/"+known.ID, "", testToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func multipartCSV(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadSales(t *testing.T) {
	t.Run("lote parcial", func(t *testing.T) {
		saleUC := &fakeSaleUC{res: &usecase.IngestSalesRes{
			InsertedCount: 1,
			Errors:        []string{"Linha 2: campo 'quantity': deve ser maior que zero"},
		}}
		router := newTestRouter(newFakeProductUC(), saleUC, &fakeCategoryUC{})

		body, contentType := multipartCSV(t, "file", "vendas.csv", "product_id,quantity,sale_date,unit_price\nX,1,2024-01-01,1.0\nX,0,2024-01-01,1.0\n")
		req := httptest.NewRequest(http.MethodPost, "/sales/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+testToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
		}
		res := decodeBody(t, rec)
		if res["inserted_count"] != float64(1) {
			t.Errorf("inserted_count = %v, want 1", res["inserted_count"])
		}
		errs, ok := res["errors"].([]any)
		if !ok || len(errs) != 1 {
			t.Fatalf("errors = %v, want one entry", res["errors"])
		}
	})

	t.Run("lote limpo devolve lista vazia", func(t *testing.T) {
		saleUC := &fakeSaleUC{res: &usecase.IngestSalesRes{InsertedCount: 2}}
		router := newTestRouter(newFakeProductUC(), saleUC, &fakeCategoryUC{})

		body, contentType := multipartCSV(t, "file", "vendas.csv", "product_id,quantity,sale_date,unit_price\n")
		req := httptest.NewRequest(http.MethodPost, "/sales/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+testToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"errors":[]`) {
			t.Errorf("body = %s, want empty errors list, never null", rec.Body.String())
		}
	})

	t.Run("sem campo de arquivo responde 400", func(t *testing.T) {
		saleUC := &fakeSaleUC{res: &usecase.IngestSalesRes{}}
		router := newTestRouter(newFakeProductUC(), saleUC, &fakeCategoryUC{})

		body, contentType := multipartCSV(t, "outro", "vendas.csv", "x")
		req := httptest.NewRequest(http.MethodPost, "/sales/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+testToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Nenhum arquivo enviado" {
			t.Errorf("error = %v", got)
		}
		if saleUC.calls != 0 {
			t.Error("IngestSales must not run without a file")
		}
	})

	t.Run("corpo não multipart responde 400", func(t *testing.T) {
		saleUC := &fakeSaleUC{res: &usecase.IngestSalesRes{}}
		router := newTestRouter(newFakeProductUC(), saleUC, &fakeCategoryUC{})

		rec := doJSON(t, router, http.MethodPost, "/sales/upload", `{"file":"x"}`, testToken)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("extensão errada responde 400", func(t *testing.T) {
		saleUC := &fakeSaleUC{err: e.ErrNotCSV}
		router := newTestRouter(newFakeProductUC(), saleUC, &fakeCategoryUC{})

		body, contentType := multipartCSV(t, "file", "vendas.txt", "x")
		req := httptest.NewRequest(http.MethodPost, "/sales/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+testToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Arquivo deve ter extensão .csv" {
			t.Errorf("error = %v", got)
		}
	})
}

func TestCategories(t *testing.T) {
	catUC := &fakeCategoryUC{categories: []usecase.CategoryInfo{{ID: primitive.NewObjectID().Hex(), Name: "Roupas"}}}
	router := newTestRouter(newFakeProductUC(), &fakeSaleUC{}, catUC)

	t.Run("listagem pública", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/categories", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var list []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(list) != 1 || list[0]["name"] != "Roupas" {
			t.Errorf("list = %v", list)
		}
	})

	t.Run("criação autenticada", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/categories", `{"name":"Calçados","description":"Tênis e afins"}`, testToken)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
		}
		if _, ok := decodeBody(t, rec)["_id"].(string); !ok {
			t.Errorf("body = %s, want _id", rec.Body.String())
		}
	})
}
