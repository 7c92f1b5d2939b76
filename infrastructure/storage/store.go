package storage

import (
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Chaves do arquivo de dados. O layout é o mesmo usado pelo dashboard no
// navegador: três entradas chave-valor com arrays/objetos JSON.
const (
	KeySales    = "financial_app_vendas"
	KeyExpenses = "financial_app_despesas"
	KeyProfile  = "financial_app_usuario"
)

const dataFileName = "financial_app.json"

// Store é um repositório chave-valor sobre um único arquivo JSON. Leitores
// devem tolerar chave ausente: Get deixa o destino intocado e o chamador
// parte do valor padrão (coleção vazia, perfil padrão).
type Store struct {
	path string
	mu   sync.Mutex
}

// New cria o diretório de dados se necessário e abre o store
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório de dados")
	}

	return &Store{path: filepath.Join(dataDir, dataFileName)}, nil
}

// Path retorna o caminho do arquivo de dados, usado pelo agendador de backup
func (s *Store) Path() string {
	return s.path
}

// Get decodifica o valor da chave em out. Arquivo ou chave ausente não é
// erro: out permanece com o valor que o chamador inicializou.
func (s *Store) Get(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	raw, ok := entries[key]
	if !ok {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a chave %s", key)
	}

	return nil
}

// Set grava o valor completo da chave. A escrita é do arquivo inteiro, via
// arquivo temporário e rename, para nunca deixar um arquivo meio escrito.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "erro ao codificar a chave %s", key)
	}

	entries[key] = raw

	return s.write(entries)
}

// Delete remove as chaves informadas, ignorando as que não existem
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}

	for _, key := range keys {
		delete(entries, key)
	}

	return s.write(entries)
}

func (s *Store) read() (map[string]jsoniter.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]jsoniter.RawMessage{}, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o arquivo de dados")
	}

	entries := map[string]jsoniter.RawMessage{}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "arquivo de dados corrompido")
	}

	return entries, nil
}

func (s *Store) write(entries map[string]jsoniter.RawMessage) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "erro ao codificar o arquivo de dados")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "erro ao gravar o arquivo temporário")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "erro ao substituir o arquivo de dados")
	}

	return nil
}
