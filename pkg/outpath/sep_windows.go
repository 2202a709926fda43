package outpath

const separators = `/\`
