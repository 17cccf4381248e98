package tink

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeyManager struct {
	typeURL string
}

func (f *fakeKeyManager) TypeURL() string { return f.typeURL }
func (f *fakeKeyManager) Version() uint32 { return 0 }
func (f *fakeKeyManager) NewKeyData(serializedFormat []byte) (*KeyData, error) {
	return &KeyData{
		TypeURL:         f.typeURL,
		Value:           append([]byte("key:"), serializedFormat...),
		KeyMaterialType: KeyMaterialSymmetric,
	}, nil
}
func (f *fakeKeyManager) Primitive(serializedKey []byte) (any, error) {
	return string(serializedKey), nil
}

type otherKeyManager struct {
	fakeKeyManager
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	km := &fakeKeyManager{typeURL: "type.googleapis.com/test.FakeKey"}
	require.NoError(t, reg.RegisterKeyManager(km))

	got, err := reg.KeyManager(km.TypeURL())
	require.NoError(t, err)
	assert.Same(t, KeyManager(km), got)

	_, err = reg.KeyManager("type.googleapis.com/test.Unregistered")
	assert.True(t, IsConfiguration(err))
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	const typeURL = "type.googleapis.com/test.FakeKey"

	reg := NewRegistry()
	first := &fakeKeyManager{typeURL: typeURL}
	require.NoError(t, reg.RegisterKeyManager(first))

	// Same concrete type again is a no-op.
	require.NoError(t, reg.RegisterKeyManager(&fakeKeyManager{typeURL: typeURL}))

	// A different concrete type for the same URL is rejected and the first
	// registration stays active.
	err := reg.RegisterKeyManager(&otherKeyManager{fakeKeyManager{typeURL: typeURL}})
	assert.True(t, IsConfiguration(err))

	got, err := reg.KeyManager(typeURL)
	require.NoError(t, err)
	assert.Same(t, KeyManager(first), got)
}

func TestRegistryRejectsBadManagers(t *testing.T) {
	reg := NewRegistry()
	assert.True(t, IsConfiguration(reg.RegisterKeyManager(nil)))
	assert.True(t, IsConfiguration(reg.RegisterKeyManager(&fakeKeyManager{})))
}

func TestRegistryNewKeyData(t *testing.T) {
	reg := NewRegistry()
	km := &fakeKeyManager{typeURL: "type.googleapis.com/test.FakeKey"}
	require.NoError(t, reg.RegisterKeyManager(km))

	keyData, err := reg.NewKeyData(KeyTemplate{
		TypeURL:          km.TypeURL(),
		Value:            []byte("format"),
		OutputPrefixType: TinkPrefixType,
	})
	require.NoError(t, err)
	assert.Equal(t, km.TypeURL(), keyData.TypeURL)
	assert.Equal(t, []byte("key:format"), keyData.Value)
	assert.Equal(t, KeyMaterialSymmetric, keyData.KeyMaterialType)

	_, err = reg.NewKeyData(KeyTemplate{TypeURL: "type.googleapis.com/test.Unregistered"})
	assert.True(t, IsConfiguration(err))
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := NewRegistry()
	km := &fakeKeyManager{typeURL: "type.googleapis.com/test.FakeKey"}
	require.NoError(t, reg.RegisterKeyManager(km))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := reg.KeyManager(km.TypeURL()); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRegistryPrimitive(t *testing.T) {
	reg := NewRegistry()
	km := &fakeKeyManager{typeURL: "type.googleapis.com/test.FakeKey"}
	require.NoError(t, reg.RegisterKeyManager(km))

	p, err := reg.Primitive(&KeyData{TypeURL: km.TypeURL(), Value: []byte("material")})
	require.NoError(t, err)
	assert.Equal(t, "material", p)

	_, err = reg.Primitive(nil)
	assert.True(t, IsInvalidArgument(err))

	_, err = reg.Primitive(&KeyData{TypeURL: "type.googleapis.com/test.Unregistered"})
	assert.True(t, IsConfiguration(err))
}
