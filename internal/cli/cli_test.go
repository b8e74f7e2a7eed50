package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("q") {
		case "par":
			_, _ = w.Write([]byte(`[{"city_ascii":"Paris","country":"France","iso2":"FR","flag":"🇫🇷"},` +
				`{"city_ascii":"Parma","country":"Italy","iso2":"IT","flag":"🇮🇹"}]`))
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":"internal_error","message":"internal error"}}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCmd(t *testing.T) {
	assert.Equal(t, "citytool", rootCmd.Use)

	f := rootCmd.PersistentFlags().Lookup("url")
	require.NotNil(t, f, "url flag should exist")

	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"suggest", "flag", "countries", "search"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestSuggestCmd(t *testing.T) {
	srv := fakeAPI(t)

	t.Run("prints_cities", func(t *testing.T) {
		out, err := runCmd(t, "suggest", "--url", srv.URL, "--json=false", "par")
		require.NoError(t, err)
		assert.Contains(t, out, "🇫🇷 Paris France")
		assert.Contains(t, out, "🇮🇹 Parma Italy")
	})

	t.Run("json_output", func(t *testing.T) {
		out, err := runCmd(t, "suggest", "--url", srv.URL, "--json", "par")
		require.NoError(t, err)
		assert.Contains(t, out, `"city_ascii": "Paris"`)
	})

	t.Run("no_results", func(t *testing.T) {
		out, err := runCmd(t, "suggest", "--url", srv.URL, "--json=false", "zzz")
		require.NoError(t, err)
		assert.Contains(t, out, "No cities found.")
	})

	t.Run("api_error", func(t *testing.T) {
		_, err := runCmd(t, "suggest", "--url", srv.URL, "--json=false", "boom")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "suggest failed")
	})

	t.Run("requires_query", func(t *testing.T) {
		_, err := runCmd(t, "suggest")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
	})

	t.Run("has_json_flag", func(t *testing.T) {
		f := suggestCmd.Flags().Lookup("json")
		require.NotNil(t, f)
		assert.Equal(t, "false", f.DefValue)
	})
}

func TestFlagCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "iso_code", args: []string{"jp"}, want: "🇯🇵 JP\n"},
		{name: "country_name", args: []string{"France"}, want: "🇫🇷 FR\n"},
		{name: "multi_word_country", args: []string{"United", "Kingdom"}, want: "🇬🇧 GB\n"},
		{name: "unknown", args: []string{"Atlantis"}, want: "🌍\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, append([]string{"flag"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCountriesCmd(t *testing.T) {
	t.Run("writes_unique_sorted_csv", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "worldcities.csv")
		out := filepath.Join(dir, "unique_countries.csv")
		require.NoError(t, os.WriteFile(in, []byte(
			"city,city_ascii,country\nRome,Rome,Italy\nParis,Paris,France\nMilan,Milan,Italy\n"), 0o644))

		stdout, err := runCmd(t, "countries", "--in", in, "--out", out)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Unique countries have been saved to")

		got, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "country\nFrance\nItaly\n", string(got))
	})

	t.Run("missing_input_file", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "nope.csv")
		_, err := runCmd(t, "countries", "--in", in, "--out", filepath.Join(dir, "out.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "was not found")
	})

	t.Run("missing_country_column", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "bad.csv")
		require.NoError(t, os.WriteFile(in, []byte("city\nRome\n"), 0o644))
		_, err := runCmd(t, "countries", "--in", in, "--out", filepath.Join(dir, "out.csv"))
		require.Error(t, err)
	})

	t.Run("flag_defaults", func(t *testing.T) {
		assert.Equal(t, "worldcities.csv", countriesCmd.Flags().Lookup("in").DefValue)
		assert.Equal(t, "unique_countries.csv", countriesCmd.Flags().Lookup("out").DefValue)
	})
}

func TestSearchCmd_Flags(t *testing.T) {
	assert.Equal(t, "search", searchCmd.Use)
	f := searchCmd.Flags().Lookup("debounce")
	require.NotNil(t, f)
	assert.Equal(t, "300ms", f.DefValue)
}
