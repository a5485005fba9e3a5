package dataset

import "sync"

// Store gera o dataset uma única vez, no primeiro acesso
type Store struct {
	generator *Generator
	opts      Options
	once      sync.Once
	dataset   *Dataset
}

func NewStore(generator *Generator, opts Options) *Store {
	return &Store{
		generator: generator,
		opts:      opts,
	}
}

// NewStaticStore devolve um Store que já contém o dataset informado
func NewStaticStore(ds *Dataset) *Store {
	s := &Store{dataset: ds}
	s.once.Do(func() {})
	return s
}

func (s *Store) Dataset() *Dataset {
	s.once.Do(func() {
		s.dataset = s.generator.Generate(s.opts)
	})
	return s.dataset
}
