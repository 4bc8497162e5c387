package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doctors.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesRows(t *testing.T) {
	path := writeRegistry(t, "name,specialization,latitude,longitude,hospital_name\n"+
		"Asha Menon,CARDIOLOGIST,12.9716,77.5946,Fortis Hospital\n"+
		"Dr. Ravi Shankar,NEUROLOGIST,12.9352,77.6245,Manipal Hospital\n")

	docs, err := NewLoader(path, nil, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Asha Menon", docs[0].Name)
	assert.Equal(t, "CARDIOLOGIST", docs[0].Specialization)
	assert.InDelta(t, 12.9716, docs[0].Latitude, 1e-9)
	assert.InDelta(t, 77.5946, docs[0].Longitude, 1e-9)
	assert.Equal(t, "Fortis Hospital", docs[0].Hospital)
}

func TestLoadStripsHeaderBOM(t *testing.T) {
	path := writeRegistry(t, "\uFEFFname,specialization,latitude,longitude,hospital_name\n"+
		"Asha Menon,CARDIOLOGIST,12.9716,77.5946,Fortis Hospital\n")

	docs, err := NewLoader(path, nil, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Asha Menon", docs[0].Name)
}

func TestLoadDropsBadRowsAndKeepsGoing(t *testing.T) {
	path := writeRegistry(t, "name,specialization,latitude,longitude,hospital_name\n"+
		"Broken,CARDIOLOGIST,not-a-number,77.5946,Fortis Hospital\n"+
		"Asha Menon,CARDIOLOGIST,12.9716,77.5946,Fortis Hospital\n")

	docs, err := NewLoader(path, nil, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Asha Menon", docs[0].Name)
}

func TestLoadDefaultsMissingHospital(t *testing.T) {
	path := writeRegistry(t, "name,specialization,latitude,longitude,hospital_name\n"+
		"Asha Menon,CARDIOLOGIST,12.9716,77.5946,\n")

	docs, err := NewLoader(path, nil, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "N/A", docs[0].Hospital)
}

func TestLoadTrimsValues(t *testing.T) {
	path := writeRegistry(t, "name,specialization,latitude,longitude,hospital_name\n"+
		"Asha Menon , CARDIOLOGIST , 12.9716 , 77.5946 , Fortis Hospital \n")

	docs, err := NewLoader(path, nil, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Asha Menon", docs[0].Name)
	assert.Equal(t, "CARDIOLOGIST", docs[0].Specialization)
	assert.Equal(t, "Fortis Hospital", docs[0].Hospital)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.csv"), nil, nil).Load(context.Background())
	assert.Error(t, err)
}
