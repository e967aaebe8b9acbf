// internal/types/types.go
package types

// EntityID — дескриптор сущности в реестре. Ноль означает "нет сущности".
type EntityID uint64
