package query

// FilterAll is the sentinel value every filter stage treats as identity
const FilterAll = "all"
