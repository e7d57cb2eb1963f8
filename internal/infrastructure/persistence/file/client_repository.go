package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"order_pricing/internal/domain"
	"order_pricing/internal/domain/client"
	"order_pricing/internal/domain/repository"
)

const (
	fieldSeparator = ","
	fieldCount     = 3
)

// ClientRepository keeps one client per line as name,email,tier. Fields are
// stored and read back verbatim and are not escaped, so a value containing a
// comma breaks its line. Line breaks inside a field are rejected on Save.
//
// Exists is a full scan; there is no index. The mutex only orders calls made
// through this value; other processes writing the same file are not excluded.
type ClientRepository struct {
	path string
	mu   sync.Mutex
}

func NewClientRepository(path string) *ClientRepository {
	return &ClientRepository{path: path}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Path() string {
	return r.path
}

func (r *ClientRepository) Save(ctx context.Context, c client.Client) error {
	if err := checkSingleLine(c); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := r.exists(ctx, c.Email())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateClient, c.Email())
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open client store %s: %w", r.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatRecord(c)); err != nil {
		return fmt.Errorf("append client record: %w", err)
	}
	return nil
}

func (r *ClientRepository) Exists(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exists(ctx, email)
}

func (r *ClientRepository) LoadAll(ctx context.Context) ([]client.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAll(ctx)
}

func (r *ClientRepository) exists(ctx context.Context, email string) (bool, error) {
	clients, err := r.loadAll(ctx)
	if errors.Is(err, domain.ErrStoreNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	for _, c := range clients {
		if c.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *ClientRepository) loadAll(ctx context.Context) ([]client.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open client store %s: %w", r.path, err)
	}
	defer f.Close()

	clients := make([]client.Client, 0)
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if c, ok := parseRecord(line); ok {
			clients = append(clients, c)
		}
		if errors.Is(err, io.EOF) {
			return clients, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read client store %s: %w", r.path, err)
		}
	}
}

// parseRecord rejects blank lines, wrong field counts and records that fail
// entity validation. Only the line terminator is stripped; fields keep their
// exact bytes so a loaded client equals the one that was saved.
func parseRecord(line string) (client.Client, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return client.Client{}, false
	}
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != fieldCount {
		return client.Client{}, false
	}
	c, err := client.NewClient(parts[0], parts[1], parts[2])
	if err != nil {
		return client.Client{}, false
	}
	return c, true
}

func checkSingleLine(c client.Client) error {
	fields := []struct{ name, value string }{
		{"name", c.Name()},
		{"email", c.Email()},
		{"tier", c.Tier()},
	}
	for _, f := range fields {
		if strings.ContainsAny(f.value, "\r\n") {
			return domain.NewValidationError(f.name, f.name+" must not contain line breaks")
		}
	}
	return nil
}

func formatRecord(c client.Client) string {
	return strings.Join([]string{c.Name(), c.Email(), c.Tier()}, fieldSeparator) + "\n"
}
