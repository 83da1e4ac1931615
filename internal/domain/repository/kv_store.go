package repository

import "context"

// KVStore almacén clave-valor opaco (blobs). Los repositorios guardan en él JSON
// con las mismas claves que usa el editor en el dispositivo.
type KVStore interface {
	// Get devuelve (nil, false, nil) si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
