package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const testSceneFile = `# Scene: Lone Sphere
# Description: One red sphere
camera:
  width: 32
  height: 24
  fov: 60
  from: [0, 0, -5]
  to: [0, 0, 0]
shapes:
  - type: sphere
    material:
      color: [1, 0, 0]
`

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "lone-sphere.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSceneFile), 0o644))
	return NewServer(0, dir, nil), path
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Scenes(t *testing.T) {
	s, path := newTestServer(t)
	rec := get(t, s, "/api/scenes")
	require.Equal(t, http.StatusOK, rec.Code)

	var scenes []scene.SceneInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scenes))
	require.Len(t, scenes, len(scene.ListBuiltinScenes())+1)
	assert.Equal(t, "default", scenes[0].ID)

	last := scenes[len(scenes)-1]
	assert.Equal(t, path, last.ID)
	assert.Equal(t, "Lone Sphere", last.Name)
	assert.Equal(t, scene.TypeYAML, last.Type)
}

func TestServer_RenderBuiltin(t *testing.T) {
	s, _ := newTestServer(t)
	rec := get(t, s, "/api/render?scene=default&width=20&height=16&maxDepth=2")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "320", rec.Header().Get("X-Render-Pixels"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestServer_RenderSceneFile(t *testing.T) {
	s, path := newTestServer(t)
	rec := get(t, s, "/api/render?format=ppm&scene="+path)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/x-portable-pixmap", rec.Header().Get("Content-Type"))
	assert.Equal(t, "P3\n32 24\n255\n", rec.Body.String()[:len("P3\n32 24\n255\n")])
}

func TestServer_RenderErrors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
	}{
		{"unknown scene", "/api/render?scene=nonexistent"},
		{"arbitrary path", "/api/render?scene=/etc/passwd"},
		{"width too large", "/api/render?width=5000"},
		{"width not a number", "/api/render?width=wide"},
		{"negative depth", "/api/render?maxDepth=-1"},
		{"unsupported format", "/api/render?format=gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestServer_InspectHit(t *testing.T) {
	s, path := newTestServer(t)
	rec := get(t, s, "/api/inspect?x=16&y=12&scene="+path)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp InspectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Hit)
	assert.Equal(t, "sphere", resp.GeometryType)
	assert.InDelta(t, 4.0, resp.Distance, 0.05)
	assert.False(t, resp.Inside)
	assert.Equal(t, 1.0, resp.N1)
	assert.Equal(t, 1.0, resp.N2)
	assert.Greater(t, resp.Color[0], resp.Color[1])

	mat, ok := resp.Properties["material"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#ff0000", mat["color"])
}

func TestServer_InspectMiss(t *testing.T) {
	s, path := newTestServer(t)
	rec := get(t, s, "/api/inspect?x=0&y=0&scene="+path)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp InspectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Hit)
}

func TestInspectPixel_GroupedShape(t *testing.T) {
	sceneObj, err := scene.NewBuiltinScene("group")
	require.NoError(t, err)

	// find any pixel that lands on the hexagon
	var resp InspectResponse
	for y := 0; y < sceneObj.Camera.VSize && len(resp.Groups) == 0; y += 10 {
		for x := 0; x < sceneObj.Camera.HSize && len(resp.Groups) == 0; x += 10 {
			resp = inspectPixel(sceneObj, x, y, 1)
		}
	}

	require.True(t, resp.Hit)
	// side group inside the hexagon group
	assert.Len(t, resp.Groups, 2)
	assert.Contains(t, []string{"sphere", "cylinder"}, resp.GeometryType)
}

func TestServer_InspectErrors(t *testing.T) {
	s, _ := newTestServer(t)

	for name, target := range map[string]string{
		"missing x":     "/api/inspect?y=1",
		"bad y":         "/api/inspect?x=1&y=up",
		"out of bounds": "/api/inspect?x=10000&y=0",
		"unknown scene": "/api/inspect?x=1&y=1&scene=missing",
	} {
		t.Run(name, func(t *testing.T) {
			rec := get(t, s, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
