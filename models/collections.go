package models

// Collection names for each schema. The mapping is spelled out here rather
// than derived from type names so a rename never silently moves data.
const (
	CollectionUser        = "user"
	CollectionProduct     = "product"
	CollectionTestimonial = "testimonial"
	CollectionProject     = "project"
	CollectionLead        = "lead"
	CollectionBlogPost    = "blogpost"
)
