package handlers

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pagesClient does not follow redirects so the tests can assert on them.
var pagesClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func getPage(t *testing.T, rawurl string) (int, string) {
	t.Helper()
	resp, err := pagesClient.Get(rawurl)
	if err != nil {
		t.Fatalf("get %s: %v", rawurl, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func postForm(t *testing.T, rawurl string, form url.Values) (int, string, string) {
	t.Helper()
	resp, err := pagesClient.PostForm(rawurl, form)
	if err != nil {
		t.Fatalf("post %s: %v", rawurl, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b), resp.Header.Get("Location")
}

func TestHomePage(t *testing.T) {
	ts, _ := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/utang", `{"namaPeminjam":"Andi","jumlah":10000}`)
	doJSON(t, http.MethodPost, ts.URL+"/api/utang", `{"namaPeminjam":"Budi","jumlah":20000}`)

	code, body := getPage(t, ts.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, "Andi") || !strings.Contains(body, "Budi") {
		t.Fatal("home page missing records")
	}
	if !strings.Contains(body, "Rp 30000") {
		t.Fatal("home page missing outstanding total")
	}
}

func TestHomePageSearch(t *testing.T) {
	ts, _ := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/utang", `{"namaPeminjam":"Andi","jumlah":10000}`)
	doJSON(t, http.MethodPost, ts.URL+"/api/utang", `{"namaPeminjam":"Budi","jumlah":20000}`)

	code, body := getPage(t, ts.URL+"/?cari=bud")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, "Budi") {
		t.Fatal("filtered page missing matching record")
	}
	if strings.Contains(body, "Andi") {
		t.Fatal("filtered page shows non-matching record")
	}
	// total covers only the filtered view
	if !strings.Contains(body, "Rp 20000") {
		t.Fatal("filtered page shows wrong total")
	}
}

func TestAddFormRedirects(t *testing.T) {
	ts, store := newTestServer(t)

	code, _, loc := postForm(t, ts.URL+"/add", url.Values{
		"namaPeminjam":      {"Andi"},
		"jumlah":            {"50000"},
		"keterangan":        {"pinjam warung"},
		"tanggalJatuhTempo": {"2025-12-31"},
	})
	if code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", code)
	}
	if loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(store.records))
	}
	if store.records[0].TanggalJatuhTempo == nil {
		t.Fatal("due date not stored")
	}
}

func TestAddFormValidationRerenders(t *testing.T) {
	ts, store := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/utang", `{"namaPeminjam":"Budi","jumlah":20000}`)

	code, body, _ := postForm(t, ts.URL+"/add", url.Values{
		"namaPeminjam": {""},
		"jumlah":       {"50000"},
	})
	if code != http.StatusOK {
		t.Fatalf("expected re-render with 200, got %d", code)
	}
	if !strings.Contains(body, "Nama peminjam harus diisi") {
		t.Fatal("validation message not rendered inline")
	}
	if !strings.Contains(body, "Budi") {
		t.Fatal("re-rendered page missing existing records")
	}
	if len(store.records) != 1 {
		t.Fatalf("invalid form persisted a record: %d", len(store.records))
	}
}

func TestAddFormNonNumericAmount(t *testing.T) {
	ts, store := newTestServer(t)

	code, body, _ := postForm(t, ts.URL+"/add", url.Values{
		"namaPeminjam": {"Andi"},
		"jumlah":       {"lima ribu"},
	})
	if code != http.StatusOK {
		t.Fatalf("expected re-render with 200, got %d", code)
	}
	if !strings.Contains(body, "Jumlah utang harus berupa angka") {
		t.Fatal("coercion error not rendered inline")
	}
	if len(store.records) != 0 {
		t.Fatal("invalid amount persisted a record")
	}
}

func TestUpdateFormRedirects(t *testing.T) {
	ts, store := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/utang", `{"namaPeminjam":"Andi","jumlah":10000}`)
	id := store.records[0].ID.Hex()

	code, _, loc := postForm(t, ts.URL+"/update/"+id, nil)
	if code != http.StatusSeeOther || loc != "/" {
		t.Fatalf("expected 303 to /, got %d %q", code, loc)
	}
	if store.records[0].Status != "Lunas" {
		t.Fatalf("status not updated: %q", store.records[0].Status)
	}
}

func TestDeleteFormFailureNotice(t *testing.T) {
	ts, _ := newTestServer(t)

	unknown := primitive.NewObjectID().Hex()
	_, body, _ := postForm(t, ts.URL+"/delete/"+unknown, nil)
	if !strings.Contains(body, "Gagal menghapus data") {
		t.Fatalf("expected plain failure notice, got %q", body)
	}
}

func TestDeleteFormRedirects(t *testing.T) {
	ts, store := newTestServer(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/utang", `{"namaPeminjam":"Andi","jumlah":10000}`)
	id := store.records[0].ID.Hex()

	code, _, loc := postForm(t, ts.URL+"/delete/"+id, nil)
	if code != http.StatusSeeOther || loc != "/" {
		t.Fatalf("expected 303 to /, got %d %q", code, loc)
	}
	if len(store.records) != 0 {
		t.Fatal("record not deleted")
	}
}
