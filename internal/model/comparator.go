package model

//IsUpToDate reports whether dst is a synchronized copy of src.
//It's true only if dst exists and has the same size, modification time and attribute bits as src;
//file contents are never compared, so two different files matching in all three are treated as synchronized.
func IsUpToDate(src FileRecord, dst *FileRecord) bool {
	if dst == nil {
		return false
	}
	return src.Size == dst.Size && src.ModTime.Equal(dst.ModTime) && src.Mode == dst.Mode
}
