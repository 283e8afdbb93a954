// Package redis implementa el CartStore sobre Redis. Se usa cuando corren
// varias réplicas del API: el carrito de un usuario debe verse igual sin
// importar qué réplica atienda la petición.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coffee-urbantech/pos-api/internal/application/sales"
	"github.com/coffee-urbantech/pos-api/internal/domain/cart"
	"github.com/coffee-urbantech/pos-api/pkg/config"
)

// cartTTL expiración de carritos abandonados. Un turno de caja no dura más
// de un día.
const cartTTL = 24 * time.Hour

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// CartStore guarda cada carrito como JSON bajo cart:{userID}.
type CartStore struct {
	client *redis.Client
}

// NewCartStore construye el store sobre el cliente dado.
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

var _ sales.CartStore = (*CartStore)(nil)

func cartKey(userID string) string {
	return "cart:" + userID
}

// Get devuelve el carrito del usuario; uno vacío si la llave no existe.
func (s *CartStore) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	val, err := s.client.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return nil, fmt.Errorf("leer carrito: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return nil, fmt.Errorf("deserializar carrito: %w", err)
	}
	return &c, nil
}

// updateRetries reintentos del leer-modificar-escribir cuando otra réplica
// toca la misma llave entre el WATCH y el EXEC.
const updateRetries = 5

// Update aplica fn al carrito del usuario bajo WATCH: si otra petición
// escribe la llave entre la lectura y el EXEC, la transacción falla y se
// reintenta sobre el estado nuevo. Si fn devuelve error no se escribe nada.
func (s *CartStore) Update(ctx context.Context, userID string, fn func(c *cart.Cart) error) error {
	key := cartKey(userID)
	txf := func(tx *redis.Tx) error {
		c := cart.New()
		val, err := tx.Get(ctx, key).Result()
		switch {
		case err == nil:
			if err := json.Unmarshal([]byte(val), c); err != nil {
				return fmt.Errorf("deserializar carrito: %w", err)
			}
		case !errors.Is(err, redis.Nil):
			return fmt.Errorf("leer carrito: %w", err)
		}
		if err := fn(c); err != nil {
			return err
		}
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("serializar carrito: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, cartTTL)
			return nil
		})
		return err
	}
	for i := 0; i < updateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("actualizar carrito: la llave %s cambió en cada reintento", key)
}

// Delete descarta el carrito (commit o clear explícito).
func (s *CartStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("borrar carrito: %w", err)
	}
	return nil
}
