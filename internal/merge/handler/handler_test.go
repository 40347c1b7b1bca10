package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-service/internal/config"
	"merge-service/internal/merge/model"
)

func testConfig() config.Config {
	return config.Config{MaxUploadMB: 16, Threshold: model.DefaultThreshold}
}

func multipartRequest(t *testing.T, files map[string]string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for field, content := range files {
		fw, err := w.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/merge", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestMergeSimilarityJSON(t *testing.T) {
	req := multipartRequest(t,
		map[string]string{
			"fileLeft":  "name,city\nAcme Inc,Oslo\nZephyr,Rome\n",
			"fileRight": "name,val\nAcme Inc,X\n",
		},
		map[string]string{
			"left_output":  "name,city",
			"right_output": "val",
			"left_match":   "name",
			"right_match":  "name",
			"threshold":    "0,8", // RU-запятая тоже принимается
			"filter":       "All",
		})
	rec := httptest.NewRecorder()
	Merge(testConfig(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "similarity", res.Mode)
	assert.Equal(t,
		[]string{"Left_name", "Left_city", "Right_val", "Similarity_Score", "Match_Status"},
		res.Columns)
	require.Len(t, res.Rows, 2)

	matched := res.Rows[0]
	assert.Equal(t, "Acme Inc", matched.Cells["Left_name"])
	assert.Equal(t, "X", matched.Cells["Right_val"])
	require.NotNil(t, matched.Match)
	assert.Equal(t, model.StatusMatched, matched.Match.Status)

	noMatch := res.Rows[1]
	assert.Equal(t, "Zephyr", noMatch.Cells["Left_name"])
	assert.Equal(t, "", noMatch.Cells["Right_val"])
	require.NotNil(t, noMatch.Match)
	assert.Equal(t, model.StatusNoMatch, noMatch.Match.Status)
}

func TestMergePositionalJSON(t *testing.T) {
	req := multipartRequest(t,
		map[string]string{
			"fileLeft":  "id,name\n1,A\n",
			"fileRight": "id,val\n9,X\n",
		},
		map[string]string{
			"left_output":  "name",
			"right_output": "val",
		})
	rec := httptest.NewRecorder()
	Merge(testConfig(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "positional", res.Mode)
	assert.Equal(t, []string{"Left_name", "Right_val"}, res.Columns)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "A", res.Rows[0].Cells["Left_name"])
	assert.Equal(t, "X", res.Rows[0].Cells["Right_val"])
	assert.Nil(t, res.Rows[0].Match)
}

func TestMergeUnknownColumnIs400(t *testing.T) {
	req := multipartRequest(t,
		map[string]string{
			"fileLeft":  "name\nA\n",
			"fileRight": "name\nA\n",
		},
		map[string]string{
			"left_match":  "ghost",
			"right_match": "name",
		})
	rec := httptest.NewRecorder()
	Merge(testConfig(), zerolog.Nop())(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ghost")
}

func TestMergeMissingFileIs400(t *testing.T) {
	req := multipartRequest(t,
		map[string]string{"fileLeft": "name\nA\n"}, nil)
	rec := httptest.NewRecorder()
	Merge(testConfig(), zerolog.Nop())(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMergeCSVDownload(t *testing.T) {
	req := multipartRequest(t,
		map[string]string{
			"fileLeft":  "name\nAcme\n",
			"fileRight": "name\nAcme\n",
		},
		map[string]string{
			"left_match":  "name",
			"right_match": "name",
			"format":      "csv",
		})
	rec := httptest.NewRecorder()
	Merge(testConfig(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "merged.csv")
	assert.Contains(t, rec.Body.String(), "Match_Status")
	assert.Contains(t, rec.Body.String(), "Matched")
}

func TestInspect(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "data.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("name,qty\nAcme,1\nGlobex,2\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/inspect", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	Inspect(testConfig(), zerolog.Nop())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res inspectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"name", "qty"}, res.Columns)
	assert.Equal(t, 2, res.Rows)
}
