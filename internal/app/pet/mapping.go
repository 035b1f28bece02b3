package pet

import (
	dom "petstore/internal/domain/pet"
	"petstore/internal/petstore"
)

func toDomain(p petstore.Pet) *dom.Pet {
	return &dom.Pet{
		ID:   p.ID,
		Name: p.Name,
		Tag:  p.Tag,
	}
}

func toContract(p *dom.Pet) petstore.Pet {
	return petstore.Pet{
		ID:   p.ID,
		Name: p.Name,
		Tag:  p.Tag,
	}
}

func toContracts(list []dom.Pet) []petstore.Pet {
	res := make([]petstore.Pet, 0, len(list))
	for i := range list {
		res = append(res, toContract(&list[i]))
	}
	return res
}
